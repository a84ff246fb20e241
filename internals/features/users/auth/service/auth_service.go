// internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"strings"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"belajarshafa_backend/internals/configs"
	"belajarshafa_backend/internals/constants"
	authDto "belajarshafa_backend/internals/features/users/auth/dto"
	authRepo "belajarshafa_backend/internals/features/users/auth/repository"
	userDto "belajarshafa_backend/internals/features/users/user/dto"
	userModel "belajarshafa_backend/internals/features/users/user/model"
	helper "belajarshafa_backend/internals/helpers"
	authmw "belajarshafa_backend/internals/middlewares/auth"
)

var validate = validator.New()

// ========================== REGISTER ==========================
// POST /api/auth/register
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var req authDto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := authRepo.FindUserByEmail(db, req.Email); err == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Email sudah terdaftar")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hash password")
	}

	user := userModel.UserModel{
		UserName: strings.TrimSpace(req.UserName),
		Email:    req.Email,
		Password: string(hashed),
		Roles:    pq.StringArray{constants.RoleMentee},
	}
	if err := authRepo.CreateUser(db, &user); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat user")
	}

	return helper.JsonCreated(c, "Registrasi berhasil", userDto.FromUserModel(user))
}

// ========================== LOGIN ==========================
// POST /api/auth/login
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var req authDto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	user, err := authRepo.FindUserByEmail(db, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}

	access, refresh, err := IssueTokenPair(db, c, *user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	return helper.JsonOK(c, "Login berhasil", authDto.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         userDto.FromUserModel(*user),
	})
}

// ========================== GOOGLE LOGIN ==========================
// POST /api/auth/google
func GoogleLogin(db *gorm.DB, c *fiber.Ctx) error {
	var req authDto.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Google ID token tidak valid")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Gagal decode Google ID token")
	}

	email := strings.ToLower(strings.TrimSpace(claimSet.Email))
	user, err := authRepo.FindUserByGoogleID(db, claimSet.Sub)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// link akun existing by email, atau buat baru
		user, err = authRepo.FindUserByEmail(db, email)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			newUser := userModel.UserModel{
				UserName:   claimSet.Name,
				Email:      email,
				Password:   "-", // tidak dipakai utk akun Google
				GoogleID:   &claimSet.Sub,
				Roles:      pq.StringArray{constants.RoleMentee},
				IsVerified: true,
			}
			if err := authRepo.CreateUser(db, &newUser); err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat user")
			}
			user = &newUser
		} else if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
		} else {
			if err := db.Model(user).Update("google_id", claimSet.Sub).Error; err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menautkan akun Google")
			}
		}
	} else if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}

	access, refresh, err := IssueTokenPair(db, c, *user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	return helper.JsonOK(c, "Login berhasil", authDto.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         userDto.FromUserModel(*user),
	})
}

// ========================== ME ==========================
// GET /api/auth/me
func Me(db *gorm.DB, c *fiber.Ctx) error {
	userID, err := authmw.GetUserID(c)
	if err != nil {
		return err
	}
	user, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	return helper.JsonOK(c, "ok", userDto.FromUserModel(*user))
}
