// SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION & AFFILIATES. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package opsyclient

import (
	"encoding/json"
	"fmt"
	"net/netip"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	validationis "github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

const (
	validationErrorInvalidUUID      = "must be a valid UUID"
	validationErrorInvalidIPAddress = "must be a valid IP address"
	validationErrorNegative         = "must not be negative"
	validationErrorNameLength       = "must be between 1 and 128 characters"
)

// Zone is a top-level grouping of hosts, usually a datacenter or region.
type Zone struct {
	ID        uuid.UUID      `json:"id"`
	Name      string         `json:"name"`
	Vars      map[string]any `json:"vars,omitempty"`
	CreatedAt *time.Time     `json:"created_at,omitempty"`
	UpdatedAt *time.Time     `json:"updated_at,omitempty"`
}

// Host is a machine inside a zone.
type Host struct {
	ID        uuid.UUID      `json:"id"`
	ZoneID    uuid.UUID      `json:"zone_id"`
	Name      string         `json:"name"`
	BMCIP     string         `json:"bmc_ip,omitempty"`
	Vars      map[string]any `json:"vars,omitempty"`
	CreatedAt *time.Time     `json:"created_at,omitempty"`
	UpdatedAt *time.Time     `json:"updated_at,omitempty"`
}

// Group carries vars shared by its member hosts. A group is global, bound to
// a zone, or bound to a single host, and may be nested under a parent.
type Group struct {
	ID              uuid.UUID      `json:"id"`
	Name            string         `json:"name"`
	ZoneID          *uuid.UUID     `json:"zone_id,omitempty"`
	HostID          *uuid.UUID     `json:"host_id,omitempty"`
	ParentID        *uuid.UUID     `json:"parent_id,omitempty"`
	DefaultPriority int            `json:"default_priority"`
	Vars            map[string]any `json:"vars,omitempty"`
	CreatedAt       *time.Time     `json:"created_at,omitempty"`
	UpdatedAt       *time.Time     `json:"updated_at,omitempty"`
}

// HostGroupMapping places a host in a group with a priority used to order
// var precedence.
type HostGroupMapping struct {
	ID        uuid.UUID  `json:"id"`
	HostID    uuid.UUID  `json:"host_id"`
	GroupID   uuid.UUID  `json:"group_id"`
	GroupName string     `json:"group_name,omitempty"`
	Priority  int        `json:"priority"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// Login is the session of the current user.
type Login struct {
	UserName  string     `json:"user_name"`
	Token     string     `json:"token,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// LoginRequest is the body of create_login.
type LoginRequest struct {
	UserName   string `json:"user_name"`
	Password   string `json:"password"`
	ForceRenew bool   `json:"force_renew"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.UserName, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

// ZoneFilter holds the list_zones filters. Nil fields are not sent.
type ZoneFilter struct {
	Name *string
}

func (f ZoneFilter) query() map[string]any {
	return compactQuery(map[string]any{"name": f.Name})
}

// ZoneCreate is the body of create_zone.
type ZoneCreate struct {
	Name string         `json:"name"`
	Vars map[string]any `json:"vars,omitempty"`
}

func (z ZoneCreate) Validate() error {
	return validation.ValidateStruct(&z,
		validation.Field(&z.Name, validation.Required, validation.Length(1, 128).Error(validationErrorNameLength)),
	)
}

// ZoneUpdate is the body of update_zone. Nil fields are left unchanged; an
// empty non-nil Vars clears the zone's vars.
type ZoneUpdate struct {
	Name *string        `json:"name,omitempty"`
	Vars map[string]any `json:"vars"`
}

func (z ZoneUpdate) Validate() error {
	return validation.ValidateStruct(&z,
		validation.Field(&z.Name, validation.NilOrNotEmpty, validation.Length(1, 128).Error(validationErrorNameLength)),
	)
}

// HostFilter holds the list_hosts filters.
type HostFilter struct {
	Zone  *string
	Name  *string
	BMCIP *string
}

func (f HostFilter) query() map[string]any {
	return compactQuery(map[string]any{"zone": f.Zone, "name": f.Name, "bmc_ip": f.BMCIP})
}

// HostCreate is the body of create_host.
type HostCreate struct {
	ZoneID string         `json:"zone_id"`
	Name   string         `json:"name"`
	BMCIP  string         `json:"bmc_ip,omitempty"`
	Vars   map[string]any `json:"vars,omitempty"`
}

func (h HostCreate) Validate() error {
	return validation.ValidateStruct(&h,
		validation.Field(&h.ZoneID, validation.Required, validationis.UUID.Error(validationErrorInvalidUUID)),
		validation.Field(&h.Name, validation.Required, validation.Length(1, 128).Error(validationErrorNameLength)),
		validation.Field(&h.BMCIP, validationis.IP.Error(validationErrorInvalidIPAddress)),
	)
}

// HostUpdate is the body of update_host.
type HostUpdate struct {
	ZoneID *string        `json:"zone_id,omitempty"`
	Name   *string        `json:"name,omitempty"`
	BMCIP  *string        `json:"bmc_ip,omitempty"`
	Vars   map[string]any `json:"vars"`
}

func (h HostUpdate) Validate() error {
	return validation.ValidateStruct(&h,
		validation.Field(&h.ZoneID, validation.NilOrNotEmpty, validationis.UUID.Error(validationErrorInvalidUUID)),
		validation.Field(&h.Name, validation.NilOrNotEmpty, validation.Length(1, 128).Error(validationErrorNameLength)),
		validation.Field(&h.BMCIP, validation.NilOrNotEmpty, validationis.IP.Error(validationErrorInvalidIPAddress)),
	)
}

// HostGroupMappingCreate is the body of create_host_group_mapping.
type HostGroupMappingCreate struct {
	GroupID  string `json:"group_id"`
	Priority *int   `json:"priority,omitempty"`
}

func (m HostGroupMappingCreate) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.GroupID, validation.Required, validationis.UUID.Error(validationErrorInvalidUUID)),
		validation.Field(&m.Priority, validation.Min(0).Error(validationErrorNegative)),
	)
}

// HostGroupMappingUpdate is the body of update_host_group_mapping.
type HostGroupMappingUpdate struct {
	Priority *int `json:"priority,omitempty"`
}

func (m HostGroupMappingUpdate) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Priority, validation.Min(0).Error(validationErrorNegative)),
	)
}

// ValidatePriority checks a mapping priority given on its own, before the
// group it applies to is known. Nil is accepted.
func ValidatePriority(priority *int) error {
	if err := validation.Validate(priority, validation.Min(0).Error(validationErrorNegative)); err != nil {
		return &ValidationError{Field: "priority", Reason: err.Error()}
	}
	return nil
}

// GroupFilter holds the list_groups filters.
type GroupFilter struct {
	Name            *string
	Zone            *string
	Host            *string
	Parent          *string
	DefaultPriority *int
}

func (f GroupFilter) query() map[string]any {
	return compactQuery(map[string]any{
		"name":             f.Name,
		"zone":             f.Zone,
		"host":             f.Host,
		"parent":           f.Parent,
		"default_priority": f.DefaultPriority,
	})
}

// GroupCreate is the body of create_group.
type GroupCreate struct {
	Name            string         `json:"name"`
	ZoneID          *string        `json:"zone_id,omitempty"`
	HostID          *string        `json:"host_id,omitempty"`
	ParentID        *string        `json:"parent_id,omitempty"`
	DefaultPriority *int           `json:"default_priority,omitempty"`
	Vars            map[string]any `json:"vars,omitempty"`
}

func (g GroupCreate) Validate() error {
	err := validation.ValidateStruct(&g,
		validation.Field(&g.Name, validation.Required, validation.Length(1, 128).Error(validationErrorNameLength)),
		validation.Field(&g.ZoneID, validation.NilOrNotEmpty, validationis.UUID.Error(validationErrorInvalidUUID)),
		validation.Field(&g.HostID, validation.NilOrNotEmpty, validationis.UUID.Error(validationErrorInvalidUUID)),
		validation.Field(&g.ParentID, validation.NilOrNotEmpty, validationis.UUID.Error(validationErrorInvalidUUID)),
		validation.Field(&g.DefaultPriority, validation.Min(0).Error(validationErrorNegative)),
	)
	if err != nil {
		return err
	}
	if g.ZoneID != nil && g.HostID != nil {
		return validation.Errors{"host_id": fmt.Errorf("zone_id and host_id are mutually exclusive")}
	}
	return nil
}

// GroupUpdate is the body of update_group.
type GroupUpdate struct {
	Name            *string        `json:"name,omitempty"`
	ZoneID          *string        `json:"zone_id,omitempty"`
	HostID          *string        `json:"host_id,omitempty"`
	ParentID        *string        `json:"parent_id,omitempty"`
	DefaultPriority *int           `json:"default_priority,omitempty"`
	Vars            map[string]any `json:"vars"`
}

func (g GroupUpdate) Validate() error {
	err := validation.ValidateStruct(&g,
		validation.Field(&g.Name, validation.NilOrNotEmpty, validation.Length(1, 128).Error(validationErrorNameLength)),
		validation.Field(&g.ZoneID, validation.NilOrNotEmpty, validationis.UUID.Error(validationErrorInvalidUUID)),
		validation.Field(&g.HostID, validation.NilOrNotEmpty, validationis.UUID.Error(validationErrorInvalidUUID)),
		validation.Field(&g.ParentID, validation.NilOrNotEmpty, validationis.UUID.Error(validationErrorInvalidUUID)),
		validation.Field(&g.DefaultPriority, validation.Min(0).Error(validationErrorNegative)),
	)
	if err != nil {
		return err
	}
	if g.ZoneID != nil && g.HostID != nil {
		return validation.Errors{"host_id": fmt.Errorf("zone_id and host_id are mutually exclusive")}
	}
	return nil
}

// ParseVars decodes a vars argument, which must be a JSON object.
func ParseVars(raw string) (map[string]any, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, &ValidationError{Field: "vars", Reason: "not valid JSON: " + err.Error()}
	}
	if dec.More() {
		return nil, &ValidationError{Field: "vars", Reason: "trailing data after JSON object"}
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, &ValidationError{Field: "vars", Reason: "must be a JSON object"}
	}
	return obj, nil
}

// NormalizeIP validates an IP literal and returns its canonical form.
func NormalizeIP(field, raw string) (string, error) {
	addr, err := netip.ParseAddr(strings.TrimSpace(raw))
	if err != nil {
		return "", &ValidationError{Field: field, Reason: validationErrorInvalidIPAddress}
	}
	return addr.Unmap().String(), nil
}

func compactQuery(q map[string]any) map[string]any {
	out := make(map[string]any, len(q))
	for k, v := range q {
		switch p := v.(type) {
		case *string:
			if p != nil {
				out[k] = *p
			}
		case *int:
			if p != nil {
				out[k] = *p
			}
		case nil:
		default:
			out[k] = v
		}
	}
	return out
}
