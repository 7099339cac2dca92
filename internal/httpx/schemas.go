package httpx

import "blog/internal/models"

type PostCreate struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
	Author  string `json:"author" binding:"required"`
}

type PostResponse struct {
	ID         int    `json:"id"`
	Author     string `json:"author"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	DatePosted string `json:"date_posted"`
}

type UserCreate struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	ImageFile string `json:"image_file"`
}

type UserResponse struct {
	ID        int64   `json:"id"`
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	ImageFile *string `json:"image_file"`
	ImagePath string  `json:"image_path"`
}

func toPostResponse(p models.Post) PostResponse {
	return PostResponse{
		ID:         p.ID,
		Author:     p.Author,
		Title:      p.Title,
		Content:    p.Content,
		DatePosted: p.DatePosted,
	}
}

func toPostResponses(ps []models.Post) []PostResponse {
	out := make([]PostResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, toPostResponse(p))
	}
	return out
}

func toUserResponse(u models.User) UserResponse {
	r := UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		ImagePath: u.ImagePath(),
	}
	if u.ImageFile != "" {
		f := u.ImageFile
		r.ImageFile = &f
	}
	return r
}
