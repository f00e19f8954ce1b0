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

package aynary

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyQuery indicates that the query was blank after trimming.
	ErrEmptyQuery = errors.New("please enter a word to look up")

	// ErrNotFound indicates that no entry matched the query.
	ErrNotFound = errors.New("not found")

	// ErrUpstream indicates that the remote dictionary service failed.
	ErrUpstream = errors.New("upstream error")

	// ErrDatasetLoad indicates that a dataset could not be parsed.
	ErrDatasetLoad = errors.New("loading dataset")
)

// NotFoundError is returned when no entry matches a term.
type NotFoundError struct {
	// Term is the trimmed query.
	Term string

	// Detail is optional detail text, e.g. the message returned by a remote
	// service.
	Detail string
}

func (e *NotFoundError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("no entry found for %q: %s", e.Term, e.Detail)
	}
	return fmt.Sprintf("no entry found for %q", e.Term)
}

// Unwrap returns ErrNotFound.
func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// UpstreamError is returned when a remote dictionary service responds with an
// unexpected status.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%v: status %d", ErrUpstream, e.Status)
	}
	return fmt.Sprintf("%v: status %d: %s", ErrUpstream, e.Status, e.Body)
}

// Unwrap returns ErrUpstream.
func (e *UpstreamError) Unwrap() error { return ErrUpstream }
