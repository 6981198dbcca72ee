/*
Package veil provides CLI tooling to keep selected lines out of git history.

git-veil hooks into the commit cycle of a repository: lines matched by
configured patterns are removed from staged files before a commit is
recorded, then restored to the working tree byte for byte once it
completes. Originals are kept in a backup store under .git so an
interrupted run can always be rolled back.
*/
package veil
