package utils

import (
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
)

func CreateJWTToken(userID string, userName string, role string, externalID string, jwtSecretKey string) (string, error) {
	claims := jwt.MapClaims{}
	claims["authorized"] = true
	claims["userID"] = userID
	claims["name"] = userName
	claims["role"] = role
	claims["externalID"] = externalID
	claims["exp"] = time.Now().Add(time.Hour * 24).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecretKey))
}

func ExtractTokenUser(c echo.Context) (string, string, string) {
	user, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return "", "", ""
	}

	if user.Valid {
		claims := user.Claims.(jwt.MapClaims)
		userID, _ := claims["userID"].(string)
		name, _ := claims["name"].(string)
		role, _ := claims["role"].(string)
		return userID, name, role
	}
	return "", "", ""
}
