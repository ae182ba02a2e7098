package pages

import (
	"context"
	"encoding/json"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"synergy_app_echo/web/templates/shared"
)

// LoginProps carries the public Firebase web configuration
type LoginProps struct {
	FirebaseAPIKey     string
	FirebaseAuthDomain string
	FirebaseProjectID  string
	Error              string
}

const loginScript = `
firebase.initializeApp(window.firebaseConfig);
document.getElementById('google-login').addEventListener('click', async () => {
  const result = await firebase.auth().signInWithPopup(new firebase.auth.GoogleAuthProvider());
  const token = await result.user.getIdToken();
  const res = await fetch('/auth/login', { method: 'POST', headers: { 'Authorization': 'Bearer ' + token } });
  if (res.ok) { window.location.assign('/dashboard'); }
  else { document.getElementById('login-error').textContent = 'Sign in failed. Please try again.'; }
});`

// Login renders the sign-in page
func Login(p LoginProps) templ.Component {
	return shared.Component(func(context.Context) g.Node {
		cfg, _ := json.Marshal(map[string]string{
			"apiKey":     p.FirebaseAPIKey,
			"authDomain": p.FirebaseAuthDomain,
			"projectId":  p.FirebaseProjectID,
		})

		return shared.Document("Sign in",
			html.Div(
				html.Class("flex min-h-screen items-center justify-center bg-background"),
				html.Div(
					html.Class("w-full max-w-sm space-y-6 rounded-lg border border-border bg-card p-8"),
					html.Div(
						html.Class("flex items-center gap-3"),
						shared.BrandMark(),
						html.Div(
							html.Class("flex flex-col"),
							html.Span(html.Class("font-semibold"), g.Text("Synergy")),
							html.Span(html.Class("text-xs text-muted-foreground"), g.Text("HR Management")),
						),
					),
					html.P(
						html.ID("login-error"),
						html.Class("text-sm text-destructive"),
						g.Text(p.Error),
					),
					html.Button(
						html.ID("google-login"),
						html.Type("button"),
						html.Class("w-full rounded-md bg-primary px-4 py-2 text-sm font-medium text-primary-foreground"),
						g.Text("Sign in with Google"),
					),
				),
			),
			html.Script(html.Src("https://www.gstatic.com/firebasejs/10.12.0/firebase-app-compat.js")),
			html.Script(html.Src("https://www.gstatic.com/firebasejs/10.12.0/firebase-auth-compat.js")),
			html.Script(g.Raw("window.firebaseConfig = "+string(cfg)+";")),
			html.Script(g.Raw(loginScript)),
		)
	})
}
