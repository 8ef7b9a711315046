package jwt

import (
	"context"
	"time"

	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	jwtv4 "github.com/golang-jwt/jwt/v4"
	hertzjwt "github.com/hertz-contrib/jwt"
)

// Tokens are bearer credentials with a fixed 1 hour lifetime. There is no
// revocation list and no refresh path: a leaked token stays valid until it
// expires.
const TokenExpireDuration = time.Hour

const identityKey = "user_id"

var (
	secret []byte

	// AuthMiddleware guards the mutating routes. It only verifies tokens;
	// issuance goes through GenerateToken so signup/login can hand a token
	// back outside of the middleware's own login flow.
	AuthMiddleware *hertzjwt.HertzJWTMiddleware
)

// Init stores the signing key and builds the route middleware.
func Init(key string) error {
	secret = []byte(key)

	var err error
	AuthMiddleware, err = hertzjwt.New(&hertzjwt.HertzJWTMiddleware{
		Realm:         "videotube",
		Key:           secret,
		Timeout:       TokenExpireDuration,
		TokenLookup:   "header: Authorization",
		TokenHeadName: "Bearer",
		IdentityKey:   identityKey,
		IdentityHandler: func(ctx context.Context, c *app.RequestContext) interface{} {
			claims := hertzjwt.ExtractClaims(ctx, c)
			return claims[identityKey]
		},
		Unauthorized: func(ctx context.Context, c *app.RequestContext, code int, message string) {
			c.JSON(errno.TokenInvalidErr.HTTPStatus(), map[string]interface{}{
				"code":    errno.TokenInvalidErrCode,
				"message": errno.TokenInvalidErr.ErrMsg,
			})
		},
	})
	return err
}

// GenerateToken issues a signed token embedding the user id, issued-at and
// an absolute expiry one hour out.
func GenerateToken(userId int64) (string, error) {
	now := time.Now()
	claims := jwtv4.MapClaims{
		identityKey: userId,
		"iat":       now.Unix(),
		"exp":       now.Add(TokenExpireDuration).Unix(),
	}
	token := jwtv4.NewWithClaims(jwtv4.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseToken verifies signature and expiry and returns the embedded user id.
// Verification never extends a token.
func ParseToken(tokenString string) (int64, error) {
	token, err := jwtv4.Parse(tokenString, func(t *jwtv4.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtv4.SigningMethodHMAC); !ok {
			return nil, errno.TokenInvalidErr
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return 0, errno.TokenInvalidErr
	}
	claims, ok := token.Claims.(jwtv4.MapClaims)
	if !ok {
		return 0, errno.TokenInvalidErr
	}
	uid := utils.Transfer(claims[identityKey])
	if uid <= 0 {
		return 0, errno.TokenInvalidErr
	}
	return uid, nil
}

// GetUserID pulls the verified identity out of the middleware payload. It is
// only meaningful on routes behind AuthMiddleware.
func GetUserID(ctx context.Context, c *app.RequestContext) (int64, error) {
	claims := hertzjwt.ExtractClaims(ctx, c)
	uid := utils.Transfer(claims[identityKey])
	if uid <= 0 {
		return 0, errno.TokenInvalidErr
	}
	return uid, nil
}
