package mysql

const upsertBusinessSQL = `
INSERT INTO businesses
  (id, name, category, category_slug, tags, neighborhood, hours, phone, whatsapp,
   images, verified, description, address, rating, rating_count, flags, raw)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  name          = VALUES(name),
  category      = VALUES(category),
  category_slug = VALUES(category_slug),
  tags          = VALUES(tags),
  neighborhood  = VALUES(neighborhood),
  hours         = VALUES(hours),
  phone         = VALUES(phone),
  whatsapp      = VALUES(whatsapp),
  images        = VALUES(images),
  verified      = VALUES(verified),
  description   = VALUES(description),
  address       = VALUES(address),
  rating        = VALUES(rating),
  rating_count  = VALUES(rating_count),
  flags         = VALUES(flags),
  raw           = VALUES(raw),
  updated_at    = CURRENT_TIMESTAMP
`

const upsertListingSQL = `
INSERT INTO listings
  (id, type, title, price, neighborhood, images, whatsapp, created_at_iso, highlight, raw)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  type           = VALUES(type),
  title          = VALUES(title),
  price          = VALUES(price),
  neighborhood   = VALUES(neighborhood),
  images         = VALUES(images),
  whatsapp       = VALUES(whatsapp),
  created_at_iso = VALUES(created_at_iso),
  highlight      = VALUES(highlight),
  raw            = VALUES(raw),
  updated_at     = CURRENT_TIMESTAMP
`

const upsertDealSQL = `
INSERT INTO deals
  (id, title, subtitle, price_text, valid_until, business_id, business_name,
   image, whatsapp, sponsored, raw)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  title         = VALUES(title),
  subtitle      = VALUES(subtitle),
  price_text    = VALUES(price_text),
  valid_until   = VALUES(valid_until),
  business_id   = VALUES(business_id),
  business_name = VALUES(business_name),
  image         = VALUES(image),
  whatsapp      = VALUES(whatsapp),
  sponsored     = VALUES(sponsored),
  raw           = VALUES(raw),
  updated_at    = CURRENT_TIMESTAMP
`

const upsertEventSQL = `
INSERT INTO events
  (id, title, starts_at, location, price_text, tags, image, contact, raw)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  title      = VALUES(title),
  starts_at  = VALUES(starts_at),
  location   = VALUES(location),
  price_text = VALUES(price_text),
  tags       = VALUES(tags),
  image      = VALUES(image),
  contact    = VALUES(contact),
  raw        = VALUES(raw),
  updated_at = CURRENT_TIMESTAMP
`

const upsertNewsSQL = `
INSERT INTO news
  (id, title, tag, snippet, date_iso, image, raw)
VALUES
  (?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  title      = VALUES(title),
  tag        = VALUES(tag),
  snippet    = VALUES(snippet),
  date_iso   = VALUES(date_iso),
  image      = VALUES(image),
  raw        = VALUES(raw),
  updated_at = CURRENT_TIMESTAMP
`

const insertMissSQL = `
INSERT INTO ingest_misses (collection, http_status, reason)
VALUES (?, ?, ?)
ON DUPLICATE KEY UPDATE
  http_status = VALUES(http_status),
  reason      = VALUES(reason),
  seen_at     = CURRENT_TIMESTAMP
`

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

// Each table's ord column auto-increments on first insert and survives
// upserts, so ORDER BY ord preserves the upstream export order the engine's
// stable filters depend on.

const getBusinessSQL = `
SELECT id, name, category, category_slug, tags, neighborhood, hours, phone,
       whatsapp, images, verified, description, address, rating, rating_count, flags
FROM businesses
WHERE id = ?
`

const listBusinessesSQL = `
SELECT id, name, category, category_slug, tags, neighborhood, hours, phone,
       whatsapp, images, verified, description, address, rating, rating_count, flags
FROM businesses
ORDER BY ord
`

const listListingsSQL = `
SELECT id, type, title, price, neighborhood, images, whatsapp, created_at_iso, highlight
FROM listings
ORDER BY ord
`

const listDealsSQL = `
SELECT id, title, subtitle, price_text, valid_until, business_id, business_name,
       image, whatsapp, sponsored
FROM deals
ORDER BY ord
`

const listEventsSQL = `
SELECT id, title, starts_at, location, price_text, tags, image, contact
FROM events
ORDER BY ord
`

const listNewsSQL = `
SELECT id, title, tag, snippet, date_iso, image
FROM news
ORDER BY ord
`
