package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/loganlanou/dealerpost/views/helpers"
)

func Login(data LoginData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := helpers.NewWriter(w)
		hw.Rawf("<div class=\"max-w-md mx-auto %s\">", cardClass)
		hw.Raw("<h1 class=\"text-2xl font-bold text-gray-900 mb-6\">Giriş Yap</h1>")
		hw.Raw("<form method=\"post\" action=\"/login\" class=\"space-y-4\">")

		hw.Raw("<div><label for=\"email\" class=\"block text-sm font-medium text-gray-700\">Email</label>")
		hw.Rawf("<input id=\"email\" type=\"email\" name=\"email\" value=\"%s\" class=\"%s\">", data.Email, inputClass)
		fieldError(hw, data.Errors, "email")
		hw.Raw("</div>")

		hw.Raw("<div><label for=\"password\" class=\"block text-sm font-medium text-gray-700\">Şifre</label>")
		hw.Rawf("<input id=\"password\" type=\"password\" name=\"password\" class=\"%s\">", inputClass)
		fieldError(hw, data.Errors, "password")
		hw.Raw("</div>")

		hw.Rawf("<button type=\"submit\" class=\"%s w-full justify-center\">Giriş Yap</button>", buttonClass)
		hw.Raw("</form>")
		hw.Rawf("<p class=\"mt-4 text-sm text-gray-600\">Hesabınız yok mu? <a href=\"/register\" class=\"%s\">Kayıt olun</a></p>", linkClass)
		hw.Raw("</div>")
		return hw.Err()
	})
}

func Register(data RegisterData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := helpers.NewWriter(w)
		hw.Rawf("<div class=\"max-w-md mx-auto %s\">", cardClass)
		hw.Raw("<h1 class=\"text-2xl font-bold text-gray-900 mb-6\">Hesap Oluştur</h1>")
		hw.Raw("<form method=\"post\" action=\"/register\" class=\"space-y-4\">")

		field := func(name, label, kind, value string) {
			hw.Rawf("<div><label for=\"%s\" class=\"block text-sm font-medium text-gray-700\">%s</label>", name, label)
			hw.Rawf("<input id=\"%s\" type=\"%s\" name=\"%s\" value=\"%s\" class=\"%s\">", name, kind, name, value, inputClass)
			fieldError(hw, data.Errors, name)
			hw.Raw("</div>")
		}
		field("full_name", "Ad Soyad", "text", data.FullName)
		field("email", "Email", "email", data.Email)
		field("password", "Şifre", "password", "")
		field("confirm_password", "Şifre Tekrar", "password", "")

		hw.Raw("<div><label class=\"flex items-center gap-2 text-sm text-gray-700\">")
		if data.Terms {
			hw.Raw("<input type=\"checkbox\" name=\"terms\" value=\"on\" checked>")
		} else {
			hw.Raw("<input type=\"checkbox\" name=\"terms\" value=\"on\">")
		}
		hw.Raw("Kullanım koşullarını kabul ediyorum</label>")
		fieldError(hw, data.Errors, "terms")
		hw.Raw("</div>")

		hw.Rawf("<button type=\"submit\" class=\"%s w-full justify-center\">Kayıt Ol</button>", buttonClass)
		hw.Raw("</form>")
		hw.Rawf("<p class=\"mt-4 text-sm text-gray-600\">Zaten hesabınız var mı? <a href=\"/login\" class=\"%s\">Giriş yapın</a></p>", linkClass)
		hw.Raw("</div>")
		return hw.Err()
	})
}
