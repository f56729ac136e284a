package sessions

import (
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	log "github.com/sirupsen/logrus"
)

const (
	sessionCookieName = "velleta-session"

	authTokenSessionKey = "authToken"
	userNameSessionKey  = "userName"
)

// SessionStore keeps the bearer token in an encrypted cookie so the
// PWA survives reloads without re-authenticating. The token itself is
// still what authorizes API calls; the cookie is only its carrier.
type SessionStore interface {
	GetAuthToken(r *http.Request) string
	SetAuthToken(w http.ResponseWriter, r *http.Request, token, userName string) error
	GetUserName(r *http.Request) string
	ClearSession(w http.ResponseWriter, r *http.Request) error
}

type CookieSessionStore struct {
	store *sessions.CookieStore
}

func NewCookieSessionStore(keyPairs ...[]byte) *CookieSessionStore {
	store := sessions.NewCookieStore(keyPairs...)

	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(7 * 24 * time.Hour / time.Second),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}
	return &CookieSessionStore{store: store}
}

func (c *CookieSessionStore) getSession(r *http.Request) (*sessions.Session, error) {
	session, err := c.store.Get(r, sessionCookieName)
	if err != nil {
		log.Printf("Error getting session: %v", err)
	}
	return session, nil
}

func (c *CookieSessionStore) GetAuthToken(r *http.Request) string {
	session, err := c.getSession(r)
	if err != nil || session == nil {
		return ""
	}
	token, ok := session.Values[authTokenSessionKey].(string)
	if !ok {
		return ""
	}
	return token
}

func (c *CookieSessionStore) SetAuthToken(w http.ResponseWriter, r *http.Request, token, userName string) error {
	session, err := c.getSession(r)
	if err != nil || session == nil {
		return err
	}
	session.Values[authTokenSessionKey] = token
	session.Values[userNameSessionKey] = userName
	return session.Save(r, w)
}

func (c *CookieSessionStore) GetUserName(r *http.Request) string {
	session, err := c.getSession(r)
	if err != nil || session == nil {
		return ""
	}
	userName, ok := session.Values[userNameSessionKey].(string)
	if !ok {
		return ""
	}
	return userName
}

func (c *CookieSessionStore) ClearSession(w http.ResponseWriter, r *http.Request) error {
	session, err := c.getSession(r)
	if err != nil || session == nil {
		return err
	}
	session.Values = make(map[interface{}]interface{})
	session.Options.MaxAge = -1
	return session.Save(r, w)
}
