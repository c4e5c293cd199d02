// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the read-only report API served on the loopback
// interface.
//
// Every route is a GET. Account payloads never carry password blobs, with
// the exception of the JSON backup download, and nothing is ever
// decrypted. Request tracing, access logging, response compression and
// panic recovery are applied before requests reach the service layer.
package http
