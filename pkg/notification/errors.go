// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notification

import "errors"

var ErrNotificationNotFound = errors.New("notification not found")
