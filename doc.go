// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package aynary implements the core of a desktop word-lookup tool.
//
// The module is made up of several packages:
//  1. This package holds the dictionary entry data model, the lookup error
//     taxonomy and the entry formatter which renders entries as display text.
//  2. The store package holds the immutable lexical store, either parsed once
//     from the bundled dataset or opened from a dataset file.
//  3. The resolve package resolves free-text queries against a store using
//     an exact match pass followed by a prefix fallback.
//  4. The online package resolves queries against a remote dictionary
//     service that speaks the FreeDictionary API.
//  5. The bridge package exposes a single running instance on the session
//     bus and relays commands, in order, to the thread that owns the window.
//  6. The dispatch package consumes relayed commands on the window thread.
//
// Dataset files are JSON arrays of entries in the format returned by the
// FreeDictionary API:
// https://dictionaryapi.dev/
package aynary
