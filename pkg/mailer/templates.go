package mailer

import "html/template"

const layoutHTML = `<!DOCTYPE html>
<html><body style="margin:0;padding:20px;background:#f7f7f7;font-family:Arial,Helvetica,sans-serif;font-size:16px;color:{{.Brand.TextColor}};">
<table role="presentation" width="100%" cellspacing="0" cellpadding="0" border="0" align="center" style="max-width:600px;background:#ffffff;border-radius:8px;">
  <tr><td align="center" style="padding:24px;border-bottom:1px solid #eeeeee;">
    <h1 style="margin:0;font-size:28px;color:{{.Brand.PrimaryColor}};">{{.Brand.Name}}</h1>
  </td></tr>
  <tr><td align="center" style="padding:32px 24px;">
    <h2 style="margin:0 0 16px;font-size:24px;">{{.Title}}</h2>
    {{template "content" .}}
    {{if .Button}}
    <p style="margin-top:32px;"><a href="{{.Button.Link}}" target="_blank" style="display:inline-block;padding:12px 24px;font-weight:bold;color:#ffffff;background:{{.Button.Color}};border-radius:6px;text-decoration:none;">{{.Button.Text}}</a></p>
    {{end}}
  </td></tr>
  <tr><td align="center" style="padding:16px;background:{{.Brand.TextColor}};color:#ffffff;font-size:12px;">
    <p style="margin:0;">&copy; {{.Year}} {{.Brand.Footer}}</p>
  </td></tr>
</table>
</body></html>`

var contentHTML = map[string]string{
	"welcome": `<p>Hello {{.Data.Name}},</p>
<p>We're so happy to have you! You're now officially a part of the {{.Brand.Name}} family.</p>
<p>Explore our full menu and place your first order today!</p>`,

	"admin_notify": `<p>Hello Admin,</p>
<p>A new admin account has just been registered.</p>
<ul style="list-style-type:none;padding:0;">
  <li><strong>Name:</strong> {{.Data.Name}}</li>
  <li><strong>Email:</strong> {{.Data.Email}}</li>
  <li><strong>Phone:</strong> {{.Data.Phone}}</li>
</ul>`,

	"order_confirmed": `<p>Hello, {{.Data.Name}}!</p>
<p>Thank you for your order! We've received it and are preparing it now. Your order number is <strong>#{{.Data.Ref}}</strong>.</p>
<p>Total: <strong>{{.Data.Total}}</strong> &middot; Pickup: <strong>{{.Data.Pickup}}</strong></p>`,

	"order_status": `<p>Hi {{.Data.Name}},</p>
<p>{{.Data.Line}}</p>`,

	"waitlist": `{{range .Data.Paragraphs}}<p style="text-align:left;">{{.}}</p>
{{end}}`,
}

// templates holds one clone of the layout per content kind.
var templates = func() map[string]*template.Template {
	base := template.Must(template.New("layout").Parse(layoutHTML))
	out := make(map[string]*template.Template, len(contentHTML))
	for name, body := range contentHTML {
		t := template.Must(base.Clone())
		template.Must(t.New("content").Parse(body))
		out[name] = t
	}
	return out
}()
