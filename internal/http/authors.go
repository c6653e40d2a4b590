package http

import "github.com/mrlokans/readingclub/internal/dto"

type AuthorsController struct {
	*ResourceController[dto.Author]
}

func NewAuthorsController(service AuthorService) *AuthorsController {
	return &AuthorsController{ResourceController: newResourceController[dto.Author]("author", service)}
}
