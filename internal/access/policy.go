// Package access decides whether an actor may perform an action on a resource.
package access

import (
	_ "embed"
	"fmt"

	"github.com/SergeyBogomolovv/store-service/internal/entities"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

//go:embed model.conf
var modelConf string

const (
	always    = "true"
	ownerOnly = "!r.obj.Scoped || r.obj.OwnerID == r.sub.ID"
)

var (
	everyone      = []entities.Role{entities.RoleAnonymous, entities.RoleUser, entities.RoleAdmin}
	authenticated = []entities.Role{entities.RoleUser, entities.RoleAdmin}
	admins        = []entities.Role{entities.RoleAdmin}
	users         = []entities.Role{entities.RoleUser}

	reads  = []entities.Action{entities.ActionRead, entities.ActionList}
	writes = []entities.Action{entities.ActionCreate, entities.ActionUpdate, entities.ActionDelete}
	single = []entities.Action{entities.ActionRead, entities.ActionUpdate, entities.ActionDelete}
)

type rule struct {
	roles   []entities.Role
	kind    entities.ResourceKind
	actions []entities.Action
	cond    string
}

// Administrators are never limited by ownership; regular users are limited to
// entities they own where a rule says so.
var rules = []rule{
	{everyone, entities.KindProduct, reads, always},
	{admins, entities.KindProduct, writes, always},

	{authenticated, entities.KindOrder, []entities.Action{entities.ActionCreate, entities.ActionList}, always},
	{users, entities.KindOrder, single, ownerOnly},
	{admins, entities.KindOrder, single, always},

	{everyone, entities.KindReview, reads, always},
	{authenticated, entities.KindReview, []entities.Action{entities.ActionCreate}, always},
	{users, entities.KindReview, []entities.Action{entities.ActionUpdate, entities.ActionDelete}, ownerOnly},
	{admins, entities.KindReview, []entities.Action{entities.ActionUpdate, entities.ActionDelete}, always},

	{everyone, entities.KindCollection, reads, always},
	{admins, entities.KindCollection, writes, always},
}

// subject and object are the request attributes seen by the matcher.
type subject struct {
	ID   int64
	Role string
}

type object struct {
	Kind    string
	OwnerID int64
	Scoped  bool
}

type Policy struct {
	enforcer *casbin.SyncedEnforcer
}

func New() (*Policy, error) {
	m, err := model.NewModelFromString(modelConf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse access model: %w", err)
	}

	enforcer, err := casbin.NewSyncedEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("failed to create enforcer: %w", err)
	}

	if _, err := enforcer.AddPolicies(expand(rules)); err != nil {
		return nil, fmt.Errorf("failed to load access rules: %w", err)
	}

	return &Policy{enforcer: enforcer}, nil
}

func expand(rules []rule) [][]string {
	var out [][]string
	for _, r := range rules {
		for _, role := range r.roles {
			for _, act := range r.actions {
				out = append(out, []string{string(role), string(r.kind), string(act), r.cond})
			}
		}
	}
	return out
}

// Authorize returns nil when the action is allowed, ErrUnauthorized when an
// anonymous actor is denied and ErrForbidden when a known actor is denied.
func (p *Policy) Authorize(actor entities.Identity, action entities.Action, res entities.Resource) error {
	sub := subject{ID: actor.UserID, Role: string(actor.Role())}
	obj := object{Kind: string(res.Kind), OwnerID: res.OwnerID, Scoped: res.Scoped}

	allowed, err := p.enforcer.Enforce(sub, obj, string(action))
	if err != nil {
		return fmt.Errorf("failed to evaluate access policy: %w", err)
	}
	if allowed {
		return nil
	}
	if !actor.IsAuthenticated() {
		return entities.ErrUnauthorized
	}
	return entities.ErrForbidden
}
