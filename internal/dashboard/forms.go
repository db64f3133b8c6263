package dashboard

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+$`)

const passwordMismatch = "Şifreler eşleşmiyor"

type RegisterForm struct {
	FullName        string
	Email           string
	Password        string
	ConfirmPassword string
	Terms           bool
}

// Validate returns the first failing rule per field. An empty map means the
// form can be submitted.
func (f RegisterForm) Validate() map[string]string {
	errs := map[string]string{}

	switch {
	case strings.TrimSpace(f.FullName) == "":
		errs["full_name"] = "Ad soyad gerekli"
	case utf8.RuneCountInString(strings.TrimSpace(f.FullName)) < 2:
		errs["full_name"] = "Ad soyad en az 2 karakter olmalı"
	}

	switch {
	case strings.TrimSpace(f.Email) == "":
		errs["email"] = "E-posta adresi gerekli"
	case !emailPattern.MatchString(f.Email):
		errs["email"] = "Geçerli bir e-posta adresi girin"
	}

	switch {
	case f.Password == "":
		errs["password"] = "Şifre gerekli"
	case utf8.RuneCountInString(f.Password) < 6:
		errs["password"] = "Şifre en az 6 karakter olmalı"
	}

	switch {
	case f.ConfirmPassword == "":
		errs["confirm_password"] = "Şifre tekrarı gerekli"
	case f.ConfirmPassword != f.Password:
		errs["confirm_password"] = passwordMismatch
	}

	if !f.Terms {
		errs["terms"] = "Kullanım şartlarını kabul etmelisiniz"
	}
	return errs
}

type LoginForm struct {
	Email    string
	Password string
}

func (f LoginForm) Validate() map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(f.Email) == "" {
		errs["email"] = "E-posta adresi gerekli"
	}
	if f.Password == "" {
		errs["password"] = "Şifre gerekli"
	}
	return errs
}
