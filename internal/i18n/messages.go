package i18n

var ar = map[string]string{
	"login":                 "تسجيل الدخول",
	"signup":                "إنشاء حساب",
	"resetPass":             "إعادة تعيين كلمة المرور",
	"logout":                "تسجيل الخروج",
	"categories":            "الفئات",
	"loading":               "جار التحميل...",
	"username":              "اسم المستخدم",
	"password":              "كلمة المرور",
	"newPassword":           "كلمة المرور الجديدة",
	"confirmPassword":       "تأكيد كلمة المرور",
	"email":                 "البريد الإلكتروني",
	"phoneNumber":           "رقم الهاتف",
	"city":                  "المدينة",
	"otp":                   "رمز التحقق",
	"invalidEmail":          "البريد الإلكتروني غير صالح",
	"invalidPassword":       "كلمة المرور غير صالحة",
	"passwordsDontMatch":    "كلمتا المرور غير متطابقتين",
	"invalidUsername":       "اسم المستخدم غير صالح",
	"invalidPhoneNumber":    "رقم الهاتف غير صالح",
	"selectCity":            "يرجى اختيار المدينة",
	"locationError":         "تعذر الحصول على الموقع",
	"loginFailed":           "فشل تسجيل الدخول",
	"signupFailed":          "فشل إنشاء الحساب",
	"updateProfileFailed":   "فشل تحديث الملف الشخصي",
	"userIdNotProvided":     "لم يتم توفير معرف المستخدم",
	"somethingWentWrong":    "حدث خطأ ما",
	"emailNotExists":        "البريد الإلكتروني غير موجود",
	"wrongOTP":              "رمز التحقق غير صحيح",
	"networkError":          "تعذر الاتصال بالخادم",
	"dontHaveAccountSignUp": "ليس لديك حساب؟ أنشئ حسابًا",
	"haveAccountLogin":      "لديك حساب؟ سجل الدخول",
	"otpSent":               "تم إرسال رمز التحقق إلى بريدك الإلكتروني",
	"passwordResetDone":     "تمت إعادة تعيين كلمة المرور",
}

var fr = map[string]string{
	"login":                 "Connexion",
	"signup":                "Inscription",
	"resetPass":             "Réinitialiser le mot de passe",
	"logout":                "Déconnexion",
	"categories":            "Catégories",
	"loading":               "Chargement...",
	"username":              "Nom d'utilisateur",
	"password":              "Mot de passe",
	"newPassword":           "Nouveau mot de passe",
	"confirmPassword":       "Confirmer le mot de passe",
	"email":                 "E-mail",
	"phoneNumber":           "Numéro de téléphone",
	"city":                  "Ville",
	"otp":                   "Code de vérification",
	"invalidEmail":          "Adresse e-mail invalide",
	"invalidPassword":       "Mot de passe invalide",
	"passwordsDontMatch":    "Les mots de passe ne correspondent pas",
	"invalidUsername":       "Nom d'utilisateur invalide",
	"invalidPhoneNumber":    "Numéro de téléphone invalide",
	"selectCity":            "Veuillez choisir une ville",
	"locationError":         "Impossible d'obtenir la position",
	"loginFailed":           "Échec de la connexion",
	"signupFailed":          "Échec de l'inscription",
	"updateProfileFailed":   "Échec de la mise à jour du profil",
	"userIdNotProvided":     "Identifiant utilisateur manquant",
	"somethingWentWrong":    "Une erreur est survenue",
	"emailNotExists":        "Cet e-mail n'existe pas",
	"wrongOTP":              "Code de vérification incorrect",
	"networkError":          "Impossible de contacter le serveur",
	"dontHaveAccountSignUp": "Pas de compte ? Inscrivez-vous",
	"haveAccountLogin":      "Déjà un compte ? Connectez-vous",
	"otpSent":               "Un code de vérification a été envoyé à votre adresse e-mail",
	"passwordResetDone":     "Mot de passe réinitialisé",
}

var en = map[string]string{
	"login":                 "Log in",
	"signup":                "Sign up",
	"resetPass":             "Reset password",
	"logout":                "Log out",
	"categories":            "Categories",
	"loading":               "Loading...",
	"username":              "Username",
	"password":              "Password",
	"newPassword":           "New password",
	"confirmPassword":       "Confirm password",
	"email":                 "Email",
	"phoneNumber":           "Phone number",
	"city":                  "City",
	"otp":                   "Verification code",
	"invalidEmail":          "Invalid email address",
	"invalidPassword":       "Invalid password",
	"passwordsDontMatch":    "Passwords don't match",
	"invalidUsername":       "Invalid username",
	"invalidPhoneNumber":    "Invalid phone number",
	"selectCity":            "Please select a city",
	"locationError":         "Could not obtain your location",
	"loginFailed":           "Login failed",
	"signupFailed":          "Signup failed",
	"updateProfileFailed":   "Profile update failed",
	"userIdNotProvided":     "User id not provided",
	"somethingWentWrong":    "Something went wrong",
	"emailNotExists":        "Email does not exist",
	"wrongOTP":              "Wrong verification code",
	"networkError":          "Could not reach the server",
	"dontHaveAccountSignUp": "Don't have an account? Sign up",
	"haveAccountLogin":      "Already have an account? Log in",
	"otpSent":               "A verification code was sent to your email",
	"passwordResetDone":     "Password has been reset",
}
