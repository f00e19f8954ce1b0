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

import (
	"errors"
	"fmt"
)

var (
	// ErrBridge is the parent of all errors returned by the bridge.
	ErrBridge = errors.New("bridge")

	// ErrTransport indicates a failure talking to the bus.
	ErrTransport = fmt.Errorf("%w: transport", ErrBridge)

	// ErrNameTaken indicates that another instance owns the service name.
	ErrNameTaken = fmt.Errorf("%w: name taken", ErrBridge)

	// ErrNameLost indicates that the service name was taken away while
	// serving.
	ErrNameLost = fmt.Errorf("%w: name lost", ErrBridge)

	// ErrNotRunning indicates that no instance owns the service name.
	ErrNotRunning = fmt.Errorf("%w: not running", ErrBridge)
)
