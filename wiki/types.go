package wiki

// Page is a wiki page as served by the backend. Content is rendered HTML
// unless the page was fetched raw, in which case it is markdown.
type Page struct {
	Title   string `json:"title,omitempty"`
	Content string `json:"content,omitempty"`
}

// LoginRequest is the payload for /user/login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// pageRequest carries page content; the page path travels in the URL
type pageRequest struct {
	Content string `json:"content"`
}

// apiResponse is the backend's generic reply, used for both confirmations and errors
type apiResponse struct {
	Message string `json:"message"`
}
