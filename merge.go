// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/i18nscope

package i18nscope

// DeepMerge returns a new tree with source merged over target.
//
// Neither argument is modified.
func DeepMerge(target Tree, source Tree) Tree {
	return DeepMergeInto(target.Clone(), source)
}

// DeepMergeInto merges source into target in place and returns target.
//
// Semantics, applied recursively:
// - keys only in source are copied into target
// - keys in both with mapping values on both sides are merged
// - keys in both with any non-mapping side take the source value
// - keys only in target are kept
//
// Mappings copied from source are cloned, so target never aliases source.
// A nil target yields a new tree.
func DeepMergeInto(target Tree, source Tree) Tree {
	if target == nil {
		target = make(Tree, len(source))
	}

	for key, srcValue := range source {
		srcTree, srcIsTree := asTree(srcValue)
		dstTree, dstIsTree := asTree(target[key])
		if srcIsTree && dstIsTree {
			target[key] = DeepMergeInto(dstTree, srcTree)
			continue
		}

		target[key] = cloneValue(srcValue)
	}

	return target
}

// MergeTrees deep-merges trees left to right into a new tree.
//
// Later trees win on scalar collisions. Nil trees are skipped.
func MergeTrees(trees ...Tree) Tree {
	out := make(Tree)
	for _, t := range trees {
		DeepMergeInto(out, t)
	}

	return out
}
