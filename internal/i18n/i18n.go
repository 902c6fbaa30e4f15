// Package i18n holds the locale-keyed message tables used for signup
// responses. Tables are plain data loaded once into read-only package state;
// rule logic never embeds message text directly.
package i18n

// Message keys for the signup flow.
const (
	MsgUsernameRequired  = "signup.username.required"
	MsgUsernameSize      = "signup.username.size"
	MsgEmailRequired     = "signup.email.required"
	MsgEmailInvalid      = "signup.email.invalid"
	MsgEmailInUse        = "signup.email.inuse"
	MsgPasswordRequired  = "signup.password.required"
	MsgPasswordMix       = "signup.password.pattern"
	MsgPasswordSize      = "signup.password.size"
	MsgUserCreated       = "signup.success"
	MsgValidationFailure = "signup.failure"
	MsgActivationSubject = "signup.activation.subject"
	MsgActivationBody    = "signup.activation.body"
)

// DefaultLocale is used when a request carries no usable locale hint.
const DefaultLocale = "en"

var tables = map[string]map[string]string{
	"en": {
		MsgUsernameRequired:  "Username cannot be null",
		MsgUsernameSize:      "Username must be min 4 and max 32 characters long",
		MsgEmailRequired:     "Email cannot be null",
		MsgEmailInvalid:      "Email is not valid",
		MsgEmailInUse:        "Email already in use",
		MsgPasswordRequired:  "Password cannot be null",
		MsgPasswordMix:       "Password must contain 1 uppercase letter, 1 lowercase letter and 1 number",
		MsgPasswordSize:      "Password must be at least 6 characters long",
		MsgUserCreated:       "User created",
		MsgValidationFailure: "Validation failure",
		MsgActivationSubject: "Activate your account",
		MsgActivationBody:    "Welcome! Open %s/activate?token=%s to activate your account.",
	},
	"tr": {
		MsgUsernameRequired:  "Kullanıcı adı boş olamaz",
		MsgUsernameSize:      "Kullanıcı adı en az 4 en fazla 32 karakter olmalı",
		MsgEmailRequired:     "E-Posta boş olamaz",
		MsgEmailInvalid:      "E-Posta geçerli değil",
		MsgEmailInUse:        "Bu E-Posta kullanılıyor",
		MsgPasswordRequired:  "Parola boş olamaz",
		MsgPasswordMix:       "Parolada en az bir büyük harf, bir küçük harf ve bir rakam bulunmalıdır",
		MsgPasswordSize:      "Parola en az 6 karakter olmalı",
		MsgUserCreated:       "Kullanıcı oluşturuldu",
		MsgValidationFailure: "Doğrulama hatası",
		MsgActivationSubject: "Hesabınızı etkinleştirin",
		MsgActivationBody:    "Hoş geldiniz! Hesabınızı etkinleştirmek için %s/activate?token=%s adresini açın.",
	},
}

// Message resolves key for the given locale, falling back to the default
// table for unknown locales or missing entries. The key itself is returned
// as a last resort so a missing entry stays visible instead of blank.
func Message(locale, key string) string {
	if table, ok := tables[locale]; ok {
		if msg, ok := table[key]; ok {
			return msg
		}
	}
	if msg, ok := tables[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Locales lists the supported locale keys, default first.
func Locales() []string {
	return []string{"en", "tr"}
}
