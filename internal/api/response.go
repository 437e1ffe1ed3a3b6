package api

// Response is the uniform envelope every endpoint returns.
// swagger:model api.Response
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func OK(data any) Response {
	return Response{Success: true, Data: data}
}

func OKMessage(message string, data any) Response {
	return Response{Success: true, Message: message, Data: data}
}

func Error(message string) Response {
	return Response{Success: false, Message: message}
}

// Internal shapes an unexpected failure. The underlying message is only
// exposed in development mode.
func Internal(err error, development bool) Response {
	if development && err != nil {
		return Error(err.Error())
	}
	return Error("Something went wrong!")
}

// Pagination describes one page of a listing.
// swagger:model api.Pagination
type Pagination struct {
	Page  int `json:"page" example:"1"`
	Limit int `json:"limit" example:"20"`
	Total int `json:"total" example:"42"`
	Pages int `json:"pages" example:"3"`
}

// NewPagination computes pages = ceil(total/limit). Pages stays 0 when the
// listing is empty.
func NewPagination(page, limit, total int) Pagination {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}
