// Package renameauthor implements the Rename Author use case. The new name must not belong to another author.
package renameauthor
