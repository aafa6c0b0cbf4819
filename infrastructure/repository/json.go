package repository

import jsoniter "github.com/json-iterator/go"

// json serializa as colunas JSONB
var json = jsoniter.ConfigCompatibleWithStandardLibrary
