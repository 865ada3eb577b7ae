package entities

// Identity is the requesting actor as supplied by the identity provider.
// The zero value is the anonymous actor.
type Identity struct {
	UserID  int64
	IsAdmin bool
}

func (i Identity) IsAuthenticated() bool {
	return i.UserID != 0
}

type Role string

const (
	RoleAnonymous Role = "anonymous"
	RoleUser      Role = "user"
	RoleAdmin     Role = "admin"
)

func (i Identity) Role() Role {
	switch {
	case !i.IsAuthenticated():
		return RoleAnonymous
	case i.IsAdmin:
		return RoleAdmin
	default:
		return RoleUser
	}
}

type Action string

const (
	ActionRead   Action = "read"
	ActionList   Action = "list"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

type ResourceKind string

const (
	KindProduct    ResourceKind = "product"
	KindOrder      ResourceKind = "order"
	KindReview     ResourceKind = "review"
	KindCollection ResourceKind = "collection"
)

// Resource is the target of an access decision. An unscoped resource stands for
// "some entity of this kind" and is used before the entity is loaded.
type Resource struct {
	Kind    ResourceKind
	OwnerID int64
	Scoped  bool
}

func Unscoped(kind ResourceKind) Resource {
	return Resource{Kind: kind}
}

func Owned(kind ResourceKind, ownerID int64) Resource {
	return Resource{Kind: kind, OwnerID: ownerID, Scoped: true}
}
