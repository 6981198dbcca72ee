// Package model describes the base objects manipulated by git-veil.
//
// The package exposes a model for selective ignore metadata.
//
// The object model for git-veil is composed of:
//
//  Patterns:
//    An ignore pattern selects lines of a file that must never reach a commit.
//    Patterns are scoped to a single repository path, or to the reserved "all"
//    entry applying to every staged file.
//
//  Documents:
//    The configuration document collects patterns and repository wide settings.
//    It lives inside the git directory so it is never committed itself.
//
//  Backup records:
//    A backup record captures the exact bytes of one file before its ignored
//    lines are stripped, so the working tree can be restored after the commit.
//
//  Machine states:
//    The strip and restore cycle spans independent hook processes. Its progress
//    is captured as a durable state machine snapshot shared through the git
//    directory.
package model
