package file

import (
	"github.com/danielgtaylor/huma/v2"

	"cloudvault/internal/domain/file"
)

type listOutput struct {
	Body file.ListResponse
}

type uploadInput struct {
	RawBody huma.MultipartFormFiles[uploadFormData]
}

type uploadFormData struct {
	File huma.FormFile `form:"file" contentType:"application/octet-stream" required:"true"`
}

type uploadOutput struct {
	Body UploadResponse
}

type UploadResponse struct {
	Message string    `json:"message"`
	File    file.File `json:"file"`
}

type downloadInput struct {
	ID string `path:"id" doc:"File record id"`
}

type deleteInput struct {
	ID string `path:"id" doc:"File record id"`
}

type deleteOutput struct {
	Body DeleteResponse
}

type DeleteResponse struct {
	Message string `json:"message"`
}
