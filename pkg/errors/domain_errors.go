package errors

var (
	// Domain errors — used in usecase/repository
	ErrUserIDTaken       = ConstraintViolation("userId is already taken")
	ErrUsernameTaken     = ConstraintViolation("userName is already taken")
	ErrMobileNumberTaken = ConstraintViolation("mobileNumber is already registered")
	ErrGroupNameTaken    = ConstraintViolation("groupName is already taken")

	ErrInvalidUserID       = ConstraintViolation("userId is required")
	ErrInvalidUsername     = ConstraintViolation("userName is required")
	ErrInvalidMobileNumber = ConstraintViolation("mobileNumber must be exactly 10 digits")
	ErrInvalidPassword     = ConstraintViolation("password must be at least 8 characters long")

	ErrUserNotFound    = NotFound("user not found")
	ErrGroupNotFound   = NotFound("group not found")
	ErrMessageNotFound = NotFound("message not found")

	ErrSenderNotParticipant = FailedPrecondition("sender is not a participant of the group")
	ErrViewerNotParticipant = FailedPrecondition("viewer is not a participant of the group")
	ErrAdminNotParticipant  = FailedPrecondition("admin must be a participant of the group")
	ErrReplyNotInGroup      = FailedPrecondition("replyTo must reference a message in the same group")

	ErrInvalidPage     = InvalidArg("page must be >= 1")
	ErrInvalidPageSize = InvalidArg("pageSize must be >= 1")

	ErrWrongPassword = Unauthorized("invalid credentials")
)

func ErrRegistrationFailed(cause error) error {
	return Wrap(CodeInternal, "registration failed", cause)
}

func ErrSendFailed(cause error) error {
	return Wrap(CodeInternal, "failed to send message", cause)
}
