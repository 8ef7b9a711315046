package errno

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	SuccessCode                = 0
	ServiceErrCode             = 10001
	ParamErrCode               = 10002
	UserAlreadyExistErrCode    = 10003
	AuthorizationFailedErrCode = 10004
	TokenInvalidErrCode        = 10005
	UserNotFoundErrCode        = 10006
	VideoNotFoundErrCode       = 10007
	BlobStorageErrCode         = 10008
)

type ErrNo struct {
	ErrCode int64
	ErrMsg  string
}

func (e ErrNo) Error() string {
	return fmt.Sprintf("err_code=%d, err_msg=%s", e.ErrCode, e.ErrMsg)
}

func NewErrNo(code int64, msg string) ErrNo {
	return ErrNo{
		ErrCode: code,
		ErrMsg:  msg,
	}
}

func (e ErrNo) WithMessage(msg string) ErrNo {
	e.ErrMsg = msg
	return e
}

var (
	Success                = NewErrNo(SuccessCode, "Success")
	ServiceErr             = NewErrNo(ServiceErrCode, "Service is unable to start successfully")
	ParamErr               = NewErrNo(ParamErrCode, "Wrong Parameter has been given")
	UserAlreadyExistErr    = NewErrNo(UserAlreadyExistErrCode, "User already exists")
	AuthorizationFailedErr = NewErrNo(AuthorizationFailedErrCode, "Invalid credentials")
	TokenInvalidErr        = NewErrNo(TokenInvalidErrCode, "Token is invalid or expired")
	UserNotFoundErr        = NewErrNo(UserNotFoundErrCode, "User does not exist")
	VideoNotFoundErr       = NewErrNo(VideoNotFoundErrCode, "Video does not exist")
	BlobStorageErr         = NewErrNo(BlobStorageErrCode, "Video storage failed")
)

// ConvertErr converts an error to an ErrNo. Unknown errors collapse into
// ServiceErr, keeping their message.
func ConvertErr(err error) ErrNo {
	if err == nil {
		return Success
	}
	var e ErrNo
	if errors.As(err, &e) {
		return e
	}
	return ServiceErr.WithMessage(err.Error())
}

// HTTPStatus maps an error code to the HTTP status the gateway answers with.
func (e ErrNo) HTTPStatus() int {
	switch e.ErrCode {
	case SuccessCode:
		return http.StatusOK
	case ParamErrCode:
		return http.StatusBadRequest
	case UserAlreadyExistErrCode:
		return http.StatusConflict
	case AuthorizationFailedErrCode, TokenInvalidErrCode:
		return http.StatusUnauthorized
	case UserNotFoundErrCode, VideoNotFoundErrCode:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
