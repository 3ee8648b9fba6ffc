// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides remote implementations of the service ports.
//
// [NewHTTPUserClient] implements service.UserService over the REST API served
// by internal/handler/http. Status codes are mapped back onto the service
// error taxonomy by mapHTTPError, so callers match remote failures with
// [errors.Is] exactly as they would local ones (service.ErrNotFound for 404,
// service.ErrDuplication for 409, service.ErrInvalidDataProvided for 400).
package adapter
