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
package bridge

import "fmt"

// CommandKind identifies a Command variant.
type CommandKind int

const (
	// KindLookupWord looks up a word and displays the result.
	KindLookupWord CommandKind = iota

	// KindShowWindow brings the window to the front.
	KindShowWindow

	// KindLookupAndShow brings the window to the front and looks up a word.
	KindLookupAndShow
)

// String returns the bus method name for the kind.
func (k CommandKind) String() string {
	switch k {
	case KindLookupWord:
		return "LookupWord"
	case KindShowWindow:
		return "ShowWindow"
	case KindLookupAndShow:
		return "LookupAndShow"
	default:
		return fmt.Sprintf("CommandKind(%d)", int(k))
	}
}

// Command is a request relayed from the bus to the consumer.
type Command struct {
	Kind CommandKind

	// Word is set for KindLookupWord and KindLookupAndShow.
	Word string
}

// LookupWord returns a KindLookupWord command.
func LookupWord(word string) Command {
	return Command{Kind: KindLookupWord, Word: word}
}

// ShowWindow returns a KindShowWindow command.
func ShowWindow() Command {
	return Command{Kind: KindShowWindow}
}

// LookupAndShow returns a KindLookupAndShow command.
func LookupAndShow(word string) Command {
	return Command{Kind: KindLookupAndShow, Word: word}
}

func (c Command) String() string {
	if c.Kind == KindShowWindow {
		return c.Kind.String()
	}
	return fmt.Sprintf("%s(%q)", c.Kind, c.Word)
}
