package note

import "inotebook/internal/domain/note"

type listOutput struct {
	Body []note.Note
}

type createInput struct {
	Body CreateNoteRequest
}

type CreateNoteRequest struct {
	Title       string `json:"title,omitempty" doc:"Title, at least 5 characters"`
	Description string `json:"description,omitempty" doc:"Description, at least 8 characters"`
	Tag         string `json:"tag,omitempty" doc:"Optional tag, defaults to General"`
}

type noteOutput struct {
	Body note.Note
}

type updateInput struct {
	ID   int `path:"id" doc:"Note identifier"`
	Body UpdateNoteRequest
}

// UpdateNoteRequest uses pointers so absent fields are left untouched.
type UpdateNoteRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Tag         *string `json:"tag,omitempty"`
}

type deleteInput struct {
	ID int `path:"id" doc:"Note identifier"`
}

type deleteOutput struct {
	Body DeleteNoteResponse
}

type DeleteNoteResponse struct {
	Success string    `json:"success"`
	Note    note.Note `json:"note"`
}
