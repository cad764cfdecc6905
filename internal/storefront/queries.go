package storefront

const productFields = `
fragment ProductFields on Product {
  id
  title
  vendor
  productType
  status
  descriptionHtml
  tags
  hasOnlyDefaultVariant
  options { id name values }
  metafields(first: 50) { nodes { namespace key value type } }
  variants(first: 100) { nodes { ...VariantFields } }
}
`

const variantFields = `
fragment VariantFields on ProductVariant {
  id
  title
  sku
  barcode
  price
  selectedOptions { name value }
  inventoryItem { measurement { weight { value unit } } }
}
`

const listProductsQuery = `
query ListProducts($first: Int!, $after: String) {
  products(first: $first, after: $after) {
    pageInfo { hasNextPage endCursor }
    nodes { ...ProductFields }
  }
}
` + productFields + variantFields

const createProductMutation = `
mutation CreateProduct($product: ProductCreateInput!) {
  productCreate(product: $product) {
    product { ...ProductFields }
    userErrors { field message }
  }
}
` + productFields + variantFields

const updateProductMutation = `
mutation UpdateProduct($product: ProductUpdateInput!) {
  productUpdate(product: $product) {
    product { ...ProductFields }
    userErrors { field message }
  }
}
` + productFields + variantFields

const deleteProductMutation = `
mutation DeleteProduct($input: ProductDeleteInput!) {
  productDelete(input: $input) {
    deletedProductId
    userErrors { field message }
  }
}
`

const createVariantsMutation = `
mutation CreateVariants($productId: ID!, $variants: [ProductVariantsBulkInput!]!, $strategy: ProductVariantsBulkCreateStrategy) {
  productVariantsBulkCreate(productId: $productId, variants: $variants, strategy: $strategy) {
    productVariants { ...VariantFields }
    userErrors { field message }
  }
}
` + variantFields

const updateVariantsMutation = `
mutation UpdateVariants($productId: ID!, $variants: [ProductVariantsBulkInput!]!) {
  productVariantsBulkUpdate(productId: $productId, variants: $variants) {
    productVariants { ...VariantFields }
    userErrors { field message }
  }
}
` + variantFields

const deleteVariantsMutation = `
mutation DeleteVariants($productId: ID!, $variantsIds: [ID!]!) {
  productVariantsBulkDelete(productId: $productId, variantsIds: $variantsIds) {
    userErrors { field message }
  }
}
`

const deleteMetafieldsMutation = `
mutation DeleteMetafields($metafields: [MetafieldIdentifierInput!]!) {
  metafieldsDelete(metafields: $metafields) {
    deletedMetafields { ownerId namespace key }
    userErrors { field message }
  }
}
`

const primaryLocationQuery = `
query PrimaryLocation {
  location { id name }
}
`
