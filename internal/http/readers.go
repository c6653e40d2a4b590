package http

import "github.com/mrlokans/readingclub/internal/dto"

type ReadersController struct {
	*ResourceController[dto.Reader]
}

func NewReadersController(service ReaderService) *ReadersController {
	return &ReadersController{ResourceController: newResourceController[dto.Reader]("reader", service)}
}
