// SPDX-License-Identifier: MPL-2.0

package alias

import (
	"fmt"

	"reprise-cli/internal/registry"
)

type (
	// Invocation is the tagged result of classifying a raw command line.
	// Exactly one of ManagementInvocation, AliasInvocation, and
	// OrdinaryInvocation is returned, letting the caller switch exhaustively
	// instead of re-inspecting the first token.
	Invocation interface {
		isInvocation()
	}

	// ManagementInvocation is an alias-management command line. The argument
	// vector is handed to the management command's own parsing untouched.
	ManagementInvocation struct {
		Argv []string
	}

	// AliasInvocation is a command line whose first token matched an alias.
	// Remaining holds the trailing tokens to splice after the stored command.
	AliasInvocation struct {
		Key       CanonicalKey
		Record    Record
		Remaining []string
	}

	// OrdinaryInvocation is a command line the alias engine does not touch;
	// the argument vector passes through to the command-line parser unchanged.
	OrdinaryInvocation struct {
		Argv []string
	}
)

func (ManagementInvocation) isInvocation() {}
func (AliasInvocation) isInvocation()      {}
func (OrdinaryInvocation) isInvocation()   {}

// Classify decides how to interpret a raw argument vector. argv must
// already have recognized global leading options stripped. The decision
// order is fixed, first match wins:
//
//  1. The management command name always wins, even when an alias shares it.
//  2. An explicit alias spelling ("/x", ".x", "~x") is resolved and looked
//     up exactly; a miss is ErrAliasNotFound, not a fallthrough, since such
//     a token cannot name an ordinary command.
//  3. A bare first token is probed as a global alias, then through the
//     ancestor-scope search. Global wins over local when both exist, which
//     keeps the collision outcome deterministic.
//  4. Anything else is an ordinary invocation.
func Classify(argv []string, cwd string, t *Table, reg *registry.Registry) (Invocation, error) {
	if len(argv) == 0 {
		return OrdinaryInvocation{Argv: argv}, nil
	}
	tok := argv[0]

	if reg.IsManagement(tok) {
		return ManagementInvocation{Argv: argv}, nil
	}

	if IsAliasSpelling(tok) {
		key, err := Resolve(tok, cwd)
		if err != nil {
			return nil, err
		}
		rec, ok := t.Get(key)
		if !ok {
			return nil, fmt.Errorf("%w: %q (key %s)", ErrAliasNotFound, tok, key)
		}
		return AliasInvocation{Key: key, Record: rec, Remaining: argv[1:]}, nil
	}

	if rec, ok := t.Get(JoinKey("/", tok)); ok {
		return AliasInvocation{Key: JoinKey("/", tok), Record: rec, Remaining: argv[1:]}, nil
	}
	if key, rec, ok := FindLocal(tok, cwd, t); ok {
		return AliasInvocation{Key: key, Record: rec, Remaining: argv[1:]}, nil
	}

	return OrdinaryInvocation{Argv: argv}, nil
}
