package utils

import (
	"time"

	"github.com/azor-ahai1/SwapSpace/pkg/errs"
	"github.com/golang-jwt/jwt"
)

func CreateAccessToken(userID string, email string, name string, jwtSecretKey string, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{}
	claims["_id"] = userID
	claims["email"] = email
	claims["name"] = name
	claims["exp"] = time.Now().Add(expiry).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecretKey))
}

func CreateRefreshToken(userID string, jwtSecretKey string, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{}
	claims["_id"] = userID
	claims["exp"] = time.Now().Add(expiry).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecretKey))
}

// ParseToken validates the signature and expiry and returns the user id claim.
func ParseToken(tokenString string, jwtSecretKey string) (string, jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errs.ErrNotLoggedIn
		}
		return []byte(jwtSecretKey), nil
	})
	if err != nil {
		if validationErr, ok := err.(*jwt.ValidationError); ok && validationErr.Errors&jwt.ValidationErrorExpired != 0 {
			return "", nil, errs.ErrExpiredToken
		}
		return "", nil, errs.ErrNotLoggedIn
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", nil, errs.ErrNotLoggedIn
	}

	userID, ok := claims["_id"].(string)
	if !ok || userID == "" {
		return "", nil, errs.ErrNotLoggedIn
	}

	return userID, claims, nil
}
