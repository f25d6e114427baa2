package authstore

import (
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"path/filepath"
	"sync"
)

const cookieFile = "cookies.json"

// Jar is a cookie jar that persists its cookies to disk between CLI
// invocations. The refresh credential the server sets at login lives here; a
// browser would keep it in its own cookie store, a CLI has to do the same by
// hand. The cookie value is stored and replayed, never interpreted.
type Jar struct {
	mu   sync.Mutex
	path string
	jar  *cookiejar.Jar
}

var _ http.CookieJar = (*Jar)(nil)

type persistedCookies map[string][]*http.Cookie

// NewJar creates a persistent jar rooted in the given state directory and
// loads any cookies saved by a previous invocation.
func NewJar(dir string) (*Jar, error) {
	inner, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	j := &Jar{
		path: filepath.Join(dir, cookieFile),
		jar:  inner,
	}
	j.load()
	return j, nil
}

// SetCookies stores cookies for the URL and flushes the jar to disk.
func (j *Jar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.jar.SetCookies(u, cookies)

	saved := persistedCookies{}
	if data, err := os.ReadFile(j.path); err == nil {
		_ = json.Unmarshal(data, &saved)
	}
	saved[u.Host] = cookies
	if data, err := json.MarshalIndent(saved, "", "  "); err == nil {
		_ = os.WriteFile(j.path, data, 0600)
	}
}

// Cookies returns the cookies to send for the URL.
func (j *Jar) Cookies(u *url.URL) []*http.Cookie {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.jar.Cookies(u)
}

// Clear drops all cookies in memory and on disk. Called on logout so the
// refresh credential does not outlive the session.
func (j *Jar) Clear() {
	j.mu.Lock()
	defer j.mu.Unlock()
	inner, err := cookiejar.New(nil)
	if err == nil {
		j.jar = inner
	}
	_ = os.Remove(j.path)
}

// load restores persisted cookies into the in-memory jar.
func (j *Jar) load() {
	data, err := os.ReadFile(j.path)
	if err != nil {
		return
	}
	var saved persistedCookies
	if err := json.Unmarshal(data, &saved); err != nil {
		return
	}
	for host, cookies := range saved {
		u := &url.URL{Scheme: "http", Host: host}
		j.jar.SetCookies(u, cookies)
		u.Scheme = "https"
		j.jar.SetCookies(u, cookies)
	}
}
