package auth

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
)

const sessionName = "reserva_admin"

// Gate — доступ к админ-разделу по общей фразе.
// Успешный вход выдаёт подписанную куку; сами брони от этого не зависят.
type Gate struct {
	phrase string
	sc     *securecookie.SecureCookie
}

// NewGate создаёт гейт. Пустые ключи означают случайные ключи на время
// жизни процесса: сессии не переживут рестарт, для короткой кампании
// записи этого достаточно.
func NewGate(phrase string, hashKey, blockKey []byte) *Gate {
	if len(hashKey) == 0 {
		hashKey = securecookie.GenerateRandomKey(32)
	}
	if len(blockKey) == 0 {
		blockKey = securecookie.GenerateRandomKey(32)
	}
	sc := securecookie.New(hashKey, blockKey)
	sc.MaxAge(int((12 * time.Hour).Seconds()))
	return &Gate{phrase: phrase, sc: sc}
}

// Check сравнивает фразу доступа за постоянное время.
func (g *Gate) Check(phrase string) bool {
	return subtle.ConstantTimeCompare([]byte(g.phrase), []byte(phrase)) == 1
}

// Grant ставит админ-куку.
func (g *Gate) Grant(w http.ResponseWriter) error {
	encoded, err := g.sc.Encode(sessionName, map[string]string{"role": "admin"})
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionName,
		Value:    encoded,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Revoke снимает админ-куку.
func (g *Gate) Revoke(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Authorized проверяет куку запроса.
func (g *Gate) Authorized(r *http.Request) bool {
	c, err := r.Cookie(sessionName)
	if err != nil {
		return false
	}
	value := map[string]string{}
	if err := g.sc.Decode(sessionName, c.Value, &value); err != nil {
		return false
	}
	return value["role"] == "admin"
}
