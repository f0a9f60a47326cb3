package request_models

type TextRequest struct {
	Text string `json:"text"`
}

type ExportQuery struct {
	Format string `form:"format"`
}
