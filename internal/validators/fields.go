package validators

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldName targets the user's display name.
	FieldName = "name"

	// FieldEmail targets the account email address.
	FieldEmail = "email"

	// FieldPassword targets a new password that must satisfy the length policy.
	FieldPassword = "password"

	// FieldPasswordPresent targets a password that is re-entered for
	// confirmation and only needs to be non-empty.
	FieldPasswordPresent = "password_present"

	// FieldCurrentPassword targets the current password in a change request.
	FieldCurrentPassword = "current_password"

	// FieldNewPassword targets the new password in a change request.
	FieldNewPassword = "new_password"

	// FieldOTP targets the 6-digit email verification passcode.
	FieldOTP = "otp"

	// FieldToken targets the hex-encoded password reset token.
	FieldToken = "token"

	// FieldDOB targets the optional date of birth.
	FieldDOB = "dob"

	// FieldProfileUpdate requires at least one field in a profile update.
	FieldProfileUpdate = "profile_update"

	// FieldContent targets the plaintext body of a journal entry.
	FieldContent = "content"

	// FieldMood targets the mood tag of a journal entry.
	FieldMood = "mood"

	// FieldEntryID targets the identifier of a journal entry.
	FieldEntryID = "entry_id"

	// FieldUserID targets the owner identifier of a journal entry.
	FieldUserID = "user_id"
)
