package store

import (
	"sync"
	"time"

	"blog/internal/models"
)

// PostStore guarda los posts solo en memoria: se pierden al reiniciar.
// Toda mutación y lectura pasa por el mutex, así el id max+1 nunca corre
// contra otro creador concurrente.
type PostStore struct {
	mu    sync.Mutex
	posts []models.Post
}

func NewPostStore(seed ...models.Post) *PostStore {
	s := &PostStore{}
	s.posts = append(s.posts, seed...)
	return s
}

// SeedPosts devuelve los dos posts de arranque de la aplicación.
func SeedPosts() []models.Post {
	return []models.Post{
		{
			ID:         1,
			Author:     "Corey Schafer",
			Title:      "FastAPI is Awesome",
			Content:    "This framework is really easy to use and super fast.",
			DatePosted: "April 20, 2025",
		},
		{
			ID:         2,
			Author:     "Jane Doe",
			Title:      "Python is Great for Web Development",
			Content:    "Python is a great language for web development, and FastAPI makes it even better.",
			DatePosted: "April 21, 2025",
		},
	}
}

// All devuelve una copia en orden de inserción; los callers nunca tocan
// el slice interno.
func (s *PostStore) All() []models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Post, len(s.posts))
	copy(out, s.posts)
	return out
}

func (s *PostStore) Get(id int) (models.Post, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.posts {
		if p.ID == id {
			return p, true
		}
	}
	return models.Post{}, false
}

// Create asigna id = max existente + 1 (1 si está vacío) y fecha con el
// reloj real del servidor.
func (s *PostStore) Create(author, title, content string) models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := 1
	for _, p := range s.posts {
		if p.ID >= id {
			id = p.ID + 1
		}
	}

	post := models.Post{
		ID:         id,
		Author:     author,
		Title:      title,
		Content:    content,
		DatePosted: time.Now().Format("January 2, 2006"),
	}
	s.posts = append(s.posts, post)
	return post
}
