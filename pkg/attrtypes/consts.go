/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package attrtypes

const (
	KindText           = "Text"
	KindTextArea       = "TextArea"
	KindPassword       = "Password"
	KindHashedPassword = "HashedPassword"
	KindNumber         = "Number"
	KindBandwidth      = "Bandwidth"
	KindBoolean        = "Boolean"
	KindCheckbox       = "Checkbox"
	KindDateTime       = "DateTime"
	KindEmail          = "Email"
	KindURL            = "URL"
	KindColor          = "Color"
	KindIPHost         = "IPHost"
	KindIPNetwork      = "IPNetwork"
	KindMacAddress     = "MacAddress"
	KindDropdown       = "Dropdown"
	KindList           = "List"
	KindJSON           = "JSON"
	KindAny            = "Any"
)
