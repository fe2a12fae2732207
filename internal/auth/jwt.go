package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims identify one player in one room for the lifetime of a session.
type Claims struct {
	PlayerID string `json:"uid"`
	RoomCode string `json:"room"`
	jwt.RegisteredClaims
}

func Sign(secret []byte, playerID, roomCode string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		PlayerID: playerID,
		RoomCode: roomCode,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   playerID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(secret)
}

func Verify(secret []byte, token string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	claims, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	if claims.PlayerID == "" || claims.RoomCode == "" {
		return nil, errors.Join(jwt.ErrTokenInvalidClaims, errors.New("missing player or room"))
	}
	return claims, nil
}
