// Package mdbundle assembles ordered markdown chapters into one consolidated
// document with a generated header block and table of contents.
//
// # Quick Start
//
// Create a service, describe the run, and assemble:
//
//	svc := mdbundle.New()
//	report, err := svc.Assemble(ctx, mdbundle.Input{
//	    BaseDir:      "docs",
//	    Chapters:     mdbundle.ChaptersFromList([]string{"01_intro", "02_setup"}),
//	    Title:        "完全ガイド",
//	    Version:      "v1.0",
//	    Generated:    "2025年01月31日 09:00:00",
//	    TOCTitle:     "目次",
//	    IndexFile:    "00_README.md",
//	    BackLinkText: "目次に戻る",
//	    OutputPath:   "FULL_GUIDE.md",
//	})
//
// The report lists the outcome of every configured chapter.
//
// # Assembly Pipeline
//
// The pipeline runs strictly in configured chapter order:
//
//  1. Resolve each identifier against the base directory (missing or
//     unreadable chapters are recorded, never fatal)
//  2. Extract each chapter's first leading heading for the table of contents
//  3. Strip back-to-index links from each chapter body
//  4. Concatenate header, TOC, and boundary-separated bodies in memory
//  5. Write the buffer once, UTF-8 with a leading byte order mark,
//     atomically (temp file + rename)
//
// A run either writes the complete document or leaves the destination
// untouched. The only fatal condition after resolution begins is a failed
// output write.
package mdbundle
