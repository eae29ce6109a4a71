package session

import (
	"net/http"
	"time"
)

const (
	AccessTokenCookie  = "access_token"
	RefreshTokenCookie = "refresh_token"

	cookieTTL = 7 * 24 * time.Hour
)

// Jar abstracts where the token cookies live. In a browser-facing request
// that is the request/response cookie pair; tests and non-browser contexts
// use the in-memory jar. A nil Jar reads as anonymous.
type Jar interface {
	Get(name string) (string, bool)
	Set(name, value string)
	Delete(name string)
}

// browserJar mirrors tokens into real HTTP cookies with a 7-day expiry.
// Reads consult cookies already written on the response first, so a token
// set and read back within one request round-trip is consistent.
type browserJar struct {
	w       http.ResponseWriter
	r       *http.Request
	written map[string]string
	deleted map[string]bool
}

// NewBrowserJar binds a jar to one request/response pair.
func NewBrowserJar(w http.ResponseWriter, r *http.Request) Jar {
	return &browserJar{
		w:       w,
		r:       r,
		written: make(map[string]string),
		deleted: make(map[string]bool),
	}
}

func (j *browserJar) Get(name string) (string, bool) {
	if j.deleted[name] {
		return "", false
	}
	if v, ok := j.written[name]; ok {
		return v, true
	}
	c, err := j.r.Cookie(name)
	if err != nil || c.Value == "" {
		return "", false
	}
	return c.Value, true
}

func (j *browserJar) Set(name, value string) {
	j.written[name] = value
	delete(j.deleted, name)
	http.SetCookie(j.w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  time.Now().Add(cookieTTL),
		SameSite: http.SameSiteLaxMode,
	})
}

func (j *browserJar) Delete(name string) {
	delete(j.written, name)
	j.deleted[name] = true
	http.SetCookie(j.w, &http.Cookie{
		Name:    name,
		Value:   "",
		Path:    "/",
		Expires: time.Unix(0, 0),
		MaxAge:  -1,
	})
}

// MemoryJar is the test/non-browser jar.
type MemoryJar struct {
	values map[string]string
}

func NewMemoryJar() *MemoryJar {
	return &MemoryJar{values: make(map[string]string)}
}

func (j *MemoryJar) Get(name string) (string, bool) {
	v, ok := j.values[name]
	return v, ok
}

func (j *MemoryJar) Set(name, value string) { j.values[name] = value }

func (j *MemoryJar) Delete(name string) { delete(j.values, name) }
