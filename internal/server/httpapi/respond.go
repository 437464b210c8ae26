package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrijs2005/photoalbum/internal/server/pictures"
)

const (
	msgInternal      = "Internal server error"
	msgBadRequest    = "Invalid request body"
	msgNoToken       = "No token provided"
	msgBadToken      = "Failed to authenticate token"
	msgUserExists    = "User already exists"
	msgBadLogin      = "Invalid email or password"
	msgMissingFields = "All fields are required"
	msgMissingLogin  = "Email and password are required"
	msgNoFile        = "No file uploaded"
	msgTooLarge      = "File too large"
	msgNotFound      = "Picture not found"
	msgUploaded      = "Picture uploaded successfully"
	msgDeleted       = "Picture deleted successfully"
	msgRegistered    = "User registered successfully"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
}

type tokenResponse struct {
	Token   string `json:"token"`
	Message string `json:"message,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type pictureDTO struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	FilePath string `json:"filePath"`
}

type picturesResponse struct {
	Success  bool         `json:"success"`
	Pictures []pictureDTO `json:"pictures"`
}

type resultResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Picture *pictureDTO `json:"picture,omitempty"`
	UserID  string      `json:"userId,omitempty"`
}

func toDTO(p pictures.Picture) pictureDTO {
	return pictureDTO{ID: p.ID, Filename: p.Filename, FilePath: p.FilePath()}
}

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
