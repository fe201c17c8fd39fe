package response

type SuccessResponse struct {
	Success bool `json:"success"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// UploadResponse возвращает три корневых пути загруженного изображения
type UploadResponse struct {
	Original string `json:"original"`
	Webp     string `json:"webp"`
	Avif     string `json:"avif"`
}

func OK() SuccessResponse {
	return SuccessResponse{Success: true}
}

func Error(msg string) ErrorResponse {
	return ErrorResponse{Error: msg}
}
