package dto

import "blogs-api/internal/models"

type CreateBlogDTO struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// UpdateBlogDTO leaves a field untouched when it is absent from the body.
type UpdateBlogDTO struct {
	Title   *string   `json:"title,omitempty"`
	Content *string   `json:"content,omitempty"`
	Creator *string   `json:"creator,omitempty"`
	Tags    *[]string `json:"tags,omitempty"`
}

func (d UpdateBlogDTO) ToModel() models.BlogUpdate {
	return models.BlogUpdate{
		Title:   d.Title,
		Content: d.Content,
		Creator: d.Creator,
		Tags:    d.Tags,
	}
}

// UpdatedBlogResponse echoes the update payload with the id it was applied to.
type UpdatedBlogResponse struct {
	UpdateBlogDTO
	ID string `json:"_id"`
}

type BlogPageResponse struct {
	Data          []models.Blog `json:"data"`
	CurrentPage   int           `json:"currentPage"`
	NumberOfPages int           `json:"numberOfPages"`
}

type BlogSearchResponse struct {
	Data []models.Blog `json:"data"`
}
