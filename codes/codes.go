package codes

const (
	CODE_SUCCESS = 200

	CODE_ERR_BAD_PARAMS    = 4001
	CODE_ERR_OBJ_NOT_FOUND = 4004
	CODE_ERR_BODY_LIMIT    = 4013

	CODE_ERR_SYSTEM = 5000
)
