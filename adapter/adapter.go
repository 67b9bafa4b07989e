// Package adapter normalizes the transaction-like values callers hand to the
// visualizer into a canonical operation list. Exactly five input shapes are
// accepted; anything else is rejected instead of guessed at.
package adapter

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/btsscan/platform/models"
)

// ErrUnrecognizedShape rejects inputs that match none of the supported
// transaction shapes.
var ErrUnrecognizedShape = errors.New("unrecognized transaction shape")

// OperationSource is the builder-like shape: any value that can hand over its
// operation list directly.
type OperationSource interface {
	Operations() []models.Operation
}

// wallet bridge method names whose second argument is a JSON-encoded
// transaction
var walletMethods = map[string]bool{
	"sign":             true,
	"signAndBroadcast": true,
	"broadcast":        true,
}

// Adapt normalizes input into (typeId, payload) tuples. Supported shapes:
//
//  1. an OperationSource (transaction builder);
//  2. a 2/3-element array ["sign"|"signAndBroadcast"|"broadcast", <tx JSON>, ...];
//  3. an object with an "operations" field;
//  4. an object with "type" and "data" (single-operation shorthand);
//  5. anything else fails with ErrUnrecognizedShape.
func Adapt(input interface{}) ([]models.Operation, error) {
	switch v := input.(type) {
	case OperationSource:
		return v.Operations(), nil

	case []interface{}:
		return adaptWalletCall(v)

	case map[string]interface{}:
		if rawOps, ok := v["operations"]; ok {
			return parseOperations(rawOps)
		}
		if op, ok := adaptSingleOperation(v); ok {
			return op, nil
		}
		return nil, ErrUnrecognizedShape

	default:
		return nil, ErrUnrecognizedShape
	}
}

func adaptWalletCall(call []interface{}) ([]models.Operation, error) {
	if len(call) != 2 && len(call) != 3 {
		return nil, ErrUnrecognizedShape
	}
	method, ok := call[0].(string)
	if !ok || !walletMethods[method] {
		return nil, ErrUnrecognizedShape
	}
	encoded, ok := call[1].(string)
	if !ok {
		return nil, ErrUnrecognizedShape
	}

	var tx map[string]interface{}
	if err := json.Unmarshal([]byte(encoded), &tx); err != nil {
		return nil, fmt.Errorf("%w: wallet call payload is not valid JSON: %v", ErrUnrecognizedShape, err)
	}
	rawOps, ok := tx["operations"]
	if !ok {
		return nil, fmt.Errorf("%w: wallet call transaction has no operations", ErrUnrecognizedShape)
	}
	return parseOperations(rawOps)
}

func adaptSingleOperation(v map[string]interface{}) ([]models.Operation, bool) {
	rawType, hasType := v["type"]
	data, hasData := v["data"].(map[string]interface{})
	if !hasType || !hasData {
		return nil, false
	}

	var opType models.OpType
	switch t := rawType.(type) {
	case float64:
		opType = models.OpType(t)
	case int:
		opType = models.OpType(t)
	case string:
		resolved, ok := models.OpTypeByName(t)
		if !ok {
			return nil, false
		}
		opType = resolved
	default:
		return nil, false
	}

	return []models.Operation{{Type: opType, Payload: data}}, true
}

// parseOperations converts a raw operations array of [typeId, payload] pairs.
func parseOperations(raw interface{}) ([]models.Operation, error) {
	list, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: operations is not an array", ErrUnrecognizedShape)
	}

	ops := make([]models.Operation, 0, len(list))
	for i, entry := range list {
		pair, ok := entry.([]interface{})
		if !ok || len(pair) != 2 {
			return nil, fmt.Errorf("%w: operation %d is not a [type, payload] pair", ErrUnrecognizedShape, i)
		}
		typeID, ok := pair[0].(float64)
		if !ok {
			return nil, fmt.Errorf("%w: operation %d has a non-numeric type id", ErrUnrecognizedShape, i)
		}
		payload, ok := pair[1].(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("%w: operation %d has a non-object payload", ErrUnrecognizedShape, i)
		}
		ops = append(ops, models.Operation{Type: models.OpType(typeID), Payload: payload})
	}
	return ops, nil
}
