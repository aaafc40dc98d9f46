package flash

import "errors"

var (
	ErrNoSecret         = errors.New("flash.no_secret")
	ErrSecretTooShort   = errors.New("flash.secret_too_short")
	ErrBatchNotFound    = errors.New("flash.batch_not_found")
	ErrInvalidFormat    = errors.New("flash.invalid_format")
	ErrDecryptionFailed = errors.New("flash.decryption_failed")
	ErrNoToken          = errors.New("flash.no_token")
	ErrNoClient         = errors.New("flash.no_client")
	ErrRedisConnString  = errors.New("flash.redis_conn_string")
	ErrRedisNotReady    = errors.New("flash.redis_not_ready")
)
