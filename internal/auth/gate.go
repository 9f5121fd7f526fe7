package auth

import "net/http"

var publicPages = map[string]bool{
	"/":       true,
	"/login":  true,
	"/signup": true,
}

// PageGate guards page routes served in front of the API. Unauthenticated
// visitors are redirected to /login for any non-public path; authenticated
// visitors hitting /login or /signup are sent to /dashboard. A token that no
// longer validates is cleared and treated as unauthenticated.
func PageGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		var claims *UserClaims
		if cookie, err := r.Cookie(CookieName); err == nil && cookie.Value != "" {
			claims, err = ValidateJWT(cookie.Value)
			if err != nil {
				claims = nil
				ClearAuthCookie(w)
			}
		}

		if claims == nil && !publicPages[path] {
			http.Redirect(w, r, "/login", http.StatusTemporaryRedirect)
			return
		}

		if claims != nil && (path == "/login" || path == "/signup") {
			http.Redirect(w, r, "/dashboard", http.StatusTemporaryRedirect)
			return
		}

		next.ServeHTTP(w, r)
	})
}
