package web

import (
	"crypto/sha256"
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/jaldristi/jaldristi_web/internal/config"
	"golang.org/x/crypto/hkdf"
)

const (
	cookieName  = "jaldristi_session"
	splashName  = "jaldristi_splash"
	keySession  = "sid"
	hkdfInfoKey = "jaldristi-cookie-keys"
)

// Toast - всплывающее уведомление, переживающее один редирект
type Toast struct {
	Kind  string
	Title string
	Text  string
}

func init() {
	gob.Register(Toast{})
}

// DeriveCookieKeys выводит ключ подписи (64 байта) и ключ шифрования (32 байта) из секрета
func DeriveCookieKeys(secret string) (hashKey, blockKey []byte, err error) {
	if secret == "" {
		return nil, nil, errors.New("session secret is empty")
	}
	r := hkdf.New(sha256.New, []byte(secret), nil, []byte(hkdfInfoKey))
	hashKey = make([]byte, 64)
	blockKey = make([]byte, 32)
	if _, err := io.ReadFull(r, hashKey); err != nil {
		return nil, nil, fmt.Errorf("derive hash key: %w", err)
	}
	if _, err := io.ReadFull(r, blockKey); err != nil {
		return nil, nil, fmt.Errorf("derive block key: %w", err)
	}
	return hashKey, blockKey, nil
}

// CookieJar хранит в подписанной и зашифрованной cookie только id сессии и flash-уведомления
type CookieJar struct {
	store *sessions.CookieStore
}

func NewCookieJar(cfg *config.Config) (*CookieJar, error) {
	hashKey, blockKey, err := DeriveCookieKeys(cfg.SessionSecret)
	if err != nil {
		return nil, err
	}
	store := sessions.NewCookieStore(hashKey, blockKey)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
	store.MaxAge(store.Options.MaxAge)
	return &CookieJar{store: store}, nil
}

// get никогда не возвращает nil: поврежденная cookie дает пустую сессию
func (j *CookieJar) get(r *http.Request) *sessions.Session {
	s, _ := j.store.Get(r, cookieName)
	return s
}

// SessionID возвращает id сессии из cookie или пустую строку
func (j *CookieJar) SessionID(r *http.Request) string {
	id, _ := j.get(r).Values[keySession].(string)
	return id
}

// Bind привязывает браузер к сессии и добавляет уведомления
func (j *CookieJar) Bind(w http.ResponseWriter, r *http.Request, sessionID string, toasts ...Toast) error {
	s := j.get(r)
	s.Values[keySession] = sessionID
	for _, t := range toasts {
		s.AddFlash(t)
	}
	return s.Save(r, w)
}

// Clear отвязывает браузер от сессии; уведомления сохраняются
func (j *CookieJar) Clear(w http.ResponseWriter, r *http.Request, toasts ...Toast) error {
	s := j.get(r)
	delete(s.Values, keySession)
	for _, t := range toasts {
		s.AddFlash(t)
	}
	return s.Save(r, w)
}

func (j *CookieJar) AddFlash(w http.ResponseWriter, r *http.Request, toast Toast) error {
	s := j.get(r)
	s.AddFlash(toast)
	return s.Save(r, w)
}

// Flashes забирает накопленные уведомления; повторный вызов вернет пустой список
func (j *CookieJar) Flashes(w http.ResponseWriter, r *http.Request) []Toast {
	s := j.get(r)
	flashes := s.Flashes()
	if len(flashes) == 0 {
		return nil
	}
	toasts := make([]Toast, 0, len(flashes))
	for _, f := range flashes {
		if t, ok := f.(Toast); ok {
			toasts = append(toasts, t)
		}
	}
	_ = s.Save(r, w)
	return toasts
}

// FirstVisit сообщает, показывался ли заставочный экран в этой сессии браузера,
// и помечает его показанным. Cookie без MaxAge живет до закрытия браузера.
func FirstVisit(w http.ResponseWriter, r *http.Request, secure bool) bool {
	if _, err := r.Cookie(splashName); err == nil {
		return false
	}
	http.SetCookie(w, &http.Cookie{
		Name:     splashName,
		Value:    "1",
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
	return true
}
