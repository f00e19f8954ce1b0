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
// Package bridge implements the command bridge: a session bus service
// through which other processes drive the single running aynary instance.
//
// Method calls received on the bus are turned into Command values and
// pushed onto a Relay. The bus goroutine never does anything else with
// them. A single consumer, usually a dispatch.Dispatcher, drains the Relay
// in order.
//
// The service exposes the following methods on its interface:
//
//	LookupWord(word string) -> (ack string)
//	ShowWindow()
//	LookupAndShow(word string)
//
// Calls to any other member are answered with
// org.freedesktop.DBus.Error.UnknownMethod.
package bridge
