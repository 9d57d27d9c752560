package text

import "cloudvault/internal/domain/text"

type listOutput struct {
	Body text.ListResponse
}

type createInput struct {
	Body CreateRequest
}

type CreateRequest struct {
	Title   string `json:"title" doc:"Snippet title" minLength:"1"`
	Content string `json:"content" doc:"Snippet body" minLength:"1"`
}

type textOutput struct {
	Body TextResponse
}

type TextResponse struct {
	Message string    `json:"message,omitempty"`
	Text    text.Text `json:"text"`
}

type updateInput struct {
	ID   string `path:"id" doc:"Text id"`
	Body CreateRequest
}

type deleteInput struct {
	ID string `path:"id" doc:"Text id"`
}

type deleteOutput struct {
	Body DeleteResponse
}

type DeleteResponse struct {
	Message string `json:"message"`
}
