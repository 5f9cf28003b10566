package domain

import "errors"

var (
	// ErrNotFound means the addressed entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrParentNotFound means the declared parent was missing at attach/move
	// time. The triggering mutation must abort before the child is persisted.
	ErrParentNotFound = errors.New("parent not found")

	// ErrValidation means the mutation's input failed a precondition check
	// before any write.
	ErrValidation = errors.New("invalid input")

	// ErrInvalidAssetType means an upload failed the extension/MIME allow-list.
	ErrInvalidAssetType = errors.New("invalid asset type")

	// ErrUnroutableUpload means no storage role exists for the entity/field.
	ErrUnroutableUpload = errors.New("unroutable upload")

	ErrDuplicateName = errors.New("name already exists")

	// ErrStillReferenced means the entity cannot be deleted while other
	// entities still point at it.
	ErrStillReferenced = errors.New("entity still referenced")

	ErrInvalidCredentials = errors.New("invalid credentials")
)
