/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 */

package attrtypes

// Provides registry of built-in attribute types
func Provide() IAttributeTypes {
	tt := types{}
	for _, t := range []attrType{
		{KindText, isString},
		{KindTextArea, isString},
		{KindPassword, isString},
		{KindHashedPassword, isString},
		{KindDropdown, isString},
		{KindNumber, isInteger},
		{KindBandwidth, isInteger},
		{KindBoolean, isBoolean},
		{KindCheckbox, isBoolean},
		{KindDateTime, isDateTime},
		{KindEmail, isEmail},
		{KindURL, isURL},
		{KindColor, isColor},
		{KindIPHost, isIPHost},
		{KindIPNetwork, isIPNetwork},
		{KindMacAddress, isMacAddress},
		{KindList, isList},
		{KindJSON, isJSON},
		{KindAny, anyValue},
	} {
		tt[t.kind] = t
	}
	return tt
}
