package models

type UploadResponse struct {
	Id          string `json:"id"`
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}

type Info struct {
	Name        string `json:"name"`
	Build       string `json:"build"`
	Description string `json:"description"`
	Environment string `json:"environment"`
}
