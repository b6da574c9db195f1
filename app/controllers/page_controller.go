package controllers

import (
	"html/template"
	"net/http"

	"github.com/ovenfresh/cookieshop/app/services"
	"github.com/ovenfresh/cookieshop/pkg/logger"
	"github.com/ovenfresh/cookieshop/pkg/response"
	"github.com/ovenfresh/cookieshop/pkg/router"
)

// PageController renders the server-side admin pages. These are thin
// shells: the login page posts to the JSON API and the dashboard talks
// to it with the access token, so the templates carry no state beyond
// what is interpolated here.
type PageController struct {
	service   *services.CookieService
	templates *template.Template
}

func NewPageController(service *services.CookieService) *PageController {
	return &PageController{
		service:   service,
		templates: template.Must(template.New("admin").Parse(adminTemplates)),
	}
}

// LoginPage handles GET /admin/login, the only admin page reachable
// without a refresh token cookie.
func (c *PageController) LoginPage(w http.ResponseWriter, r *http.Request) {
	c.render(w, r, "login", nil)
}

// Dashboard handles GET /admin/dashboard.
func (c *PageController) Dashboard(w http.ResponseWriter, r *http.Request) {
	cookies, err := c.service.List()
	if err != nil {
		logger.WithCtx(r.Context()).Error("render dashboard", "error", err)
		response.Error(w, http.StatusInternalServerError, "Server error")
		return
	}
	c.render(w, r, "dashboard", map[string]interface{}{"Cookies": cookies})
}

// EditCookie handles GET /admin/cookies/edit/{id}.
func (c *PageController) EditCookie(w http.ResponseWriter, r *http.Request) {
	c.render(w, r, "edit", map[string]interface{}{"ID": router.Param(r, "id")})
}

func (c *PageController) render(w http.ResponseWriter, r *http.Request, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.templates.ExecuteTemplate(w, name, data); err != nil {
		logger.WithCtx(r.Context()).Error("render template", "template", name, "error", err)
	}
}

const adminTemplates = `
{{define "layout_head"}}<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Cookie Shop Admin</title>
<style>
body{font-family:sans-serif;max-width:720px;margin:2rem auto;padding:0 1rem;background:#fffaf2}
h1{color:#6b4226}
table{border-collapse:collapse;width:100%}
td,th{border:1px solid #e0cdb4;padding:.4rem .6rem;text-align:left}
input,button{padding:.4rem;margin:.2rem 0}
button{background:#6b4226;color:#fff;border:none;border-radius:4px;cursor:pointer}
</style>
</head>
<body>{{end}}

{{define "login"}}{{template "layout_head"}}
<h1>Admin Login</h1>
<form id="login-form">
<label>Phone <input name="phone" autocomplete="tel"></label><br>
<label>Password <input name="password" type="password"></label><br>
<button type="submit">Sign in</button>
</form>
<p id="login-error" style="color:#b00"></p>
<script>
document.getElementById("login-form").addEventListener("submit", async function (ev) {
  ev.preventDefault();
  var form = new FormData(ev.target);
  var res = await fetch("/api/admin/login", {
    method: "POST",
    headers: {"Content-Type": "application/json"},
    body: JSON.stringify({phone: form.get("phone"), password: form.get("password")})
  });
  var data = await res.json();
  if (data.success) {
    localStorage.setItem("accessToken", data.accessToken);
    location.href = "/admin/dashboard";
  } else {
    document.getElementById("login-error").textContent = data.error || "Login failed";
  }
});
</script>
</body></html>{{end}}

{{define "dashboard"}}{{template "layout_head"}}
<h1>Dashboard</h1>
<table>
<tr><th>ID</th><th>Name</th><th>Stock</th><th>Rating</th><th></th></tr>
{{range .Cookies}}<tr>
<td>{{.ID}}</td><td>{{.Name}}</td><td>{{.Stock}}</td><td>{{.Rating}}</td>
<td><a href="/admin/cookies/edit/{{.ID}}">edit</a></td>
</tr>{{end}}
</table>
</body></html>{{end}}

{{define "edit"}}{{template "layout_head"}}
<h1>Edit Cookie #{{.ID}}</h1>
<form id="edit-form">
<label>Name <input name="name"></label><br>
<label>Description <input name="description"></label><br>
<label>Stock <input name="stock" type="number"></label><br>
<button type="submit">Save</button>
</form>
<p id="edit-status"></p>
<script>
var id = {{.ID}};
fetch("/api/cookies/" + id).then(function (r) { return r.json(); }).then(function (data) {
  if (!data.cookie) return;
  var form = document.getElementById("edit-form");
  form.name.value = data.cookie.name;
  form.description.value = data.cookie.description;
  form.stock.value = data.cookie.stock;
});
document.getElementById("edit-form").addEventListener("submit", async function (ev) {
  ev.preventDefault();
  var form = ev.target;
  var res = await fetch("/api/cookies/" + id, {
    method: "PUT",
    headers: {
      "Content-Type": "application/json",
      "Authorization": "Bearer " + localStorage.getItem("accessToken")
    },
    body: JSON.stringify({
      name: form.name.value,
      description: form.description.value,
      stock: Number(form.stock.value)
    })
  });
  var data = await res.json();
  document.getElementById("edit-status").textContent = data.message || data.error;
});
</script>
</body></html>{{end}}
`
