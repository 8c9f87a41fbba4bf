package model

// Owner identifies the account a task belongs to, or the identity a
// caller presents. The zero value is the anonymous/unowned case.
type Owner struct {
	UserID int64
	Valid  bool
}

// OwnedBy returns an Owner holding the given user ID.
func OwnedBy(userID int64) Owner {
	return Owner{UserID: userID, Valid: true}
}

// Anonymous returns the Owner carrying no identity.
func Anonymous() Owner {
	return Owner{}
}

// MayModify reports whether a caller holding this identity may mutate a
// task owned by owner. Authorization fails only when the task has an
// owner and the caller carries a different identity; unowned tasks and
// anonymous callers both pass.
func (caller Owner) MayModify(owner Owner) bool {
	if !owner.Valid || !caller.Valid {
		return true
	}
	return owner.UserID == caller.UserID
}
