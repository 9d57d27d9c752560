package note

import "cloudvault/internal/domain/note"

type listOutput struct {
	Body note.ListResponse
}

type createInput struct {
	Body CreateRequest
}

type CreateRequest struct {
	Title   string `json:"title" doc:"Note title" minLength:"1"`
	Content string `json:"content" doc:"Note body" minLength:"1"`
}

type noteOutput struct {
	Body NoteResponse
}

type NoteResponse struct {
	Message string    `json:"message,omitempty"`
	Note    note.Note `json:"note"`
}

type updateInput struct {
	ID   string `path:"id" doc:"Note id"`
	Body CreateRequest
}

type deleteInput struct {
	ID string `path:"id" doc:"Note id"`
}

type deleteOutput struct {
	Body DeleteResponse
}

type DeleteResponse struct {
	Message string `json:"message"`
}
